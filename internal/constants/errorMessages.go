package constants

// Messages surfaced to clients. Wording is part of the API contract
// the web client matches on.
const (
	MsgUsernameExists = "Username already exists"
	MsgEmailExists    = "Email already exists"

	MsgEventNotFound    = "Event not found"
	MsgHarambeeNotFound = "Harambee not found"
	MsgRentalNotFound   = "Rental not found"
	MsgAlertNotFound    = "Alert not found"

	MsgAuthRequired  = "Authentication required"
	MsgTokenRequired = "Authentication token required"
	MsgTokenInvalid  = "Invalid authentication token"

	MsgFailedFetchEvents        = "Failed to fetch events"
	MsgFailedFetchEvent         = "Failed to fetch event"
	MsgFailedFetchTickets       = "Failed to fetch tickets"
	MsgFailedFetchHarambees     = "Failed to fetch harambees"
	MsgFailedFetchHarambee      = "Failed to fetch harambee"
	MsgFailedFetchContributions = "Failed to fetch contributions"
	MsgFailedFetchRentals       = "Failed to fetch rentals"
	MsgFailedFetchRental        = "Failed to fetch rental"
	MsgFailedFetchAlerts        = "Failed to fetch alerts"
	MsgFailedFetchAlert         = "Failed to fetch alert"
	MsgFailedFetchComments      = "Failed to fetch comments"

	MsgInvalidBody = "Invalid request body"
)
