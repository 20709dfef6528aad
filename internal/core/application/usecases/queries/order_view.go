// Package queries contains read operations for the dashboard.
// Queries bypass the aggregates and read flat rows straight from PostgreSQL.
package queries

import (
	"database/sql"
	"time"
)

// OrderView is an order as shown on the dashboard.
type OrderView struct {
	OrderID             string
	Status              string
	ClientPhone         string
	AssignedWorkerPhone *string
	// AssignedWorkerName is set when the assigned phone belongs to a
	// registered worker.
	AssignedWorkerName *string
	JewelleryDetails   JewelleryDetailsView
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type JewelleryDetailsView struct {
	Name                string
	Weight              string
	Melting             string
	Timeline            string
	SpecialInstructions string
}

// selectOrders joins the assigned phone to its worker by digits.
const selectOrders = `
	SELECT
		o.order_id,
		o.status,
		o.client_phone,
		o.assigned_worker_phone,
		w.name,
		o.jewellery_name,
		o.weight,
		o.melting,
		o.timeline,
		o.special_instructions,
		o.created_at,
		o.updated_at
	FROM orders o
	LEFT JOIN worker_phones wp
		ON wp.digits = regexp_replace(o.assigned_worker_phone, '\D', '', 'g')
	LEFT JOIN workers w
		ON w.id = wp.worker_id
`

func scanOrder(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var assignedPhone, workerName sql.NullString

	err := rows.Scan(
		&view.OrderID,
		&view.Status,
		&view.ClientPhone,
		&assignedPhone,
		&workerName,
		&view.JewelleryDetails.Name,
		&view.JewelleryDetails.Weight,
		&view.JewelleryDetails.Melting,
		&view.JewelleryDetails.Timeline,
		&view.JewelleryDetails.SpecialInstructions,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if assignedPhone.Valid {
		view.AssignedWorkerPhone = &assignedPhone.String
	}
	if workerName.Valid {
		view.AssignedWorkerName = &workerName.String
	}

	return view, nil
}
