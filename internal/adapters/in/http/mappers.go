package http

import (
	"strings"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/message"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/worker"
	"atelier/internal/generated/servers"
)

func toOrderResponse(o *order.Order) servers.Order {
	details := o.Details()
	response := servers.Order{
		OrderId:     o.ID(),
		Status:      servers.OrderStatus(o.Status().String()),
		ClientPhone: o.ClientPhone().String(),
		JewelleryDetails: toDetailsResponse(queries.JewelleryDetailsView{
			Name:                details.Name,
			Weight:              details.Weight,
			Melting:             details.Melting,
			Timeline:            details.Timeline,
			SpecialInstructions: details.SpecialInstructions,
		}),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
	if phone := o.AssignedWorkerPhone(); phone != nil {
		assigned := phone.String()
		response.AssignedWorkerPhone = &assigned
	}
	return response
}

func toOrderViewResponse(view queries.OrderView) servers.Order {
	return servers.Order{
		OrderId:             view.OrderID,
		Status:              servers.OrderStatus(view.Status),
		ClientPhone:         view.ClientPhone,
		AssignedWorkerPhone: view.AssignedWorkerPhone,
		AssignedWorkerName:  view.AssignedWorkerName,
		JewelleryDetails:    toDetailsResponse(view.JewelleryDetails),
		CreatedAt:           view.CreatedAt,
		UpdatedAt:           view.UpdatedAt,
	}
}

func toDetailsResponse(d queries.JewelleryDetailsView) servers.JewelleryDetails {
	return servers.JewelleryDetails{
		Name:                optional(d.Name),
		Weight:              optional(d.Weight),
		Melting:             optional(d.Melting),
		Timeline:            optional(d.Timeline),
		SpecialInstructions: optional(d.SpecialInstructions),
	}
}

func fromDetailsRequest(d *servers.JewelleryDetails) order.JewelleryDetails {
	if d == nil {
		return order.JewelleryDetails{}
	}
	return order.JewelleryDetails{
		Name:                deref(d.Name),
		Weight:              deref(d.Weight),
		Melting:             deref(d.Melting),
		Timeline:            deref(d.Timeline),
		SpecialInstructions: deref(d.SpecialInstructions),
	}
}

const partialDeliveryWarning = "order saved, but some notifications could not be delivered"

func toTransitionResponse(o servers.Order, result commands.TransitionResult) servers.TransitionResponse {
	reports := make([]servers.NotificationReport, 0, len(result.Reports))
	for _, r := range result.Reports {
		reports = append(reports, toNotificationReport(r))
	}

	response := servers.TransitionResponse{
		Order:                  o,
		Changed:                result.Changed,
		Notifications:          reports,
		NotificationsDelivered: result.Delivered(),
	}
	if !result.Delivered() {
		warning := partialDeliveryWarning
		response.Warning = &warning
	}
	return response
}

func toNotificationReport(r notification.DeliveryReport) servers.NotificationReport {
	attempts := make([]servers.DeliveryAttempt, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		attempt := servers.DeliveryAttempt{
			Phone:     a.Phone.String(),
			Delivered: a.Succeeded(),
			MessageId: optional(a.MessageID),
		}
		if a.Err != nil {
			reason := a.Err.Error()
			attempt.Error = &reason
		}
		attempts = append(attempts, attempt)
	}
	return servers.NotificationReport{
		Kind:      servers.NotificationReportKind(r.Kind.String()),
		Delivered: r.Delivered(),
		Failed:    r.Failed(),
		Attempts:  attempts,
	}
}

func toWorkerResponse(w *worker.Worker) servers.Worker {
	phones := make([]servers.WorkerPhone, 0, len(w.Phones()))
	for _, p := range w.Phones() {
		phones = append(phones, servers.WorkerPhone{
			PhoneNumber: p.Number().String(),
			IsPrimary:   p.IsPrimary(),
		})
	}
	return servers.Worker{
		Id:     w.ID().Bytes(),
		Name:   w.Name(),
		Phones: phones,
	}
}

func toWorkerViewResponse(view queries.WorkerView) servers.Worker {
	phones := make([]servers.WorkerPhone, 0, len(view.Phones))
	for _, p := range view.Phones {
		phones = append(phones, servers.WorkerPhone{
			PhoneNumber: p.PhoneNumber,
			IsPrimary:   p.IsPrimary,
		})
	}
	return servers.Worker{
		Id:     view.ID.Bytes(),
		Name:   view.Name,
		Phones: phones,
	}
}

func fromWorkerRequest(body servers.WorkerInput) (string, []worker.PhoneInput) {
	phones := make([]worker.PhoneInput, 0, len(body.PhoneNumbers))
	for _, p := range body.PhoneNumbers {
		phones = append(phones, worker.PhoneInput{
			PhoneNumber: p.Number,
			IsPrimary:   p.IsPrimary != nil && *p.IsPrimary,
		})
	}
	return body.Name, phones
}

func toMessageResponse(m *message.Message) servers.Message {
	response := servers.Message{
		Id:         m.ID().Bytes(),
		OrderId:    m.OrderID(),
		Content:    m.Content(),
		SenderType: servers.MessageSenderType(m.SenderType()),
		Recipients: nonNil(m.Recipients()),
		CreatedAt:  m.CreatedAt(),
	}
	if media := m.Media(); media != nil {
		response.MediaId = optional(media.ID)
		response.MediaType = optional(media.Type)
	}
	return response
}

func toMessageViewResponse(view queries.MessageView) servers.Message {
	return servers.Message{
		Id:         view.ID.Bytes(),
		OrderId:    view.OrderID,
		Content:    view.Content,
		SenderType: servers.MessageSenderType(view.SenderType),
		Recipients: nonNil(view.Recipients),
		MediaId:    view.MediaID,
		MediaType:  view.MediaType,
		CreatedAt:  view.CreatedAt,
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
