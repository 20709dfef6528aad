package whatsapp

import "atelier/internal/core/domain/model/notification"

type templateRequest struct {
	MessagingProduct string          `json:"messaging_product"`
	RecipientType    string          `json:"recipient_type"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Template         templatePayload `json:"template"`
}

type templatePayload struct {
	Name       string             `json:"name"`
	Language   languagePayload    `json:"language"`
	Components []componentPayload `json:"components,omitempty"`
}

type languagePayload struct {
	Code string `json:"code"`
}

type componentPayload struct {
	Type       string             `json:"type"`
	Parameters []parameterPayload `json:"parameters"`
}

type parameterPayload struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func newTemplateRequest(to string, template notification.Template) templateRequest {
	language := template.Language
	if language == "" {
		language = notification.DefaultLanguage
	}

	req := templateRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template: templatePayload{
			Name:     template.Name,
			Language: languagePayload{Code: language},
		},
	}

	if len(template.Params) > 0 {
		params := make([]parameterPayload, 0, len(template.Params))
		for _, p := range template.Params {
			params = append(params, parameterPayload{Type: "text", Text: p})
		}
		req.Template.Components = []componentPayload{{Type: "body", Parameters: params}}
	}

	return req
}
