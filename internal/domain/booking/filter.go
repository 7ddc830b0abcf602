package booking

import "time"

// ClientFilter narrows ListClients. Set fields are combined with AND.
// Date matches the referenced schedule's date exactly, so clients whose
// schedule no longer exists never match a date filter.
type ClientFilter struct {
	Date      *time.Time
	ClientID  *uint
	ServiceID *uint
}

func (f ClientFilter) IsEmpty() bool {
	return f.Date == nil && f.ClientID == nil && f.ServiceID == nil
}
