package ports

import "errors"

// ErrPhoneAlreadyRegistered is returned by a WorkerRepository when a phone
// number belongs to another worker.
var ErrPhoneAlreadyRegistered = errors.New("phone number is already registered to a worker")

// ErrOrderAlreadyExists is returned by an OrderRepository when adding a duplicate id.
var ErrOrderAlreadyExists = errors.New("order already exists")
