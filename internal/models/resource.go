package models

// ResourceType tags the two rentable resource kinds.
type ResourceType string

const (
	ResourceHardware ResourceType = "hardware"
	ResourceBooks    ResourceType = "books"
)

// Resource is the tagged union the backend serves from the resource
// details table. Hardware fields and book fields are populated according
// to ResourceType; the unused half stays zero.
type Resource struct {
	ResourceID         int          `json:"resource_id"`
	ResourceName       string       `json:"resource_name"`
	ResourceType       ResourceType `json:"resource_type"`
	AvailabilityStatus int          `json:"availability_status"`
	QuantityRequired   int          `json:"quantity_required"`

	// Hardware half.
	DeviceType      string `json:"device_type,omitempty"`
	ModelNumber     string `json:"model_number,omitempty"`
	DeviceCondition string `json:"device_condition,omitempty"`
	WarrantyStatus  int    `json:"warranty_status,omitempty"`
	DatePurchased   string `json:"date_purchased,omitempty"`

	// Book half.
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Language    string `json:"language,omitempty"`
}

// IsHardware reports whether the record carries the hardware half.
func (r Resource) IsHardware() bool { return r.ResourceType == ResourceHardware }

// FilterResources keeps only entries carrying the given tag. The tag is a
// strict partition: an entry never appears under both types.
func FilterResources(all []Resource, t ResourceType) []Resource {
	out := make([]Resource, 0, len(all))
	for _, r := range all {
		if r.ResourceType == t {
			out = append(out, r)
		}
	}
	return out
}

// ResourcePayload is the create/update body for a resource. The constant
// type tag and the matching flag are set by the controller, never by the
// form.
type ResourcePayload struct {
	ResourceName       string       `json:"resource_name,omitempty"`
	ResourceType       ResourceType `json:"resource_type,omitempty"`
	AvailabilityStatus int          `json:"availability_status"`
	QuantityRequired   int          `json:"quantity_required,omitempty"`

	DeviceType      string `json:"device_type,omitempty"`
	ModelNumber     string `json:"model_number,omitempty"`
	DeviceCondition string `json:"device_condition,omitempty"`
	WarrantyStatus  int    `json:"warranty_status,omitempty"`
	DatePurchased   string `json:"date_purchased,omitempty"`
	HardwareFlag    bool   `json:"hardware_flag,omitempty"`

	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Language    string `json:"language,omitempty"`
	BooksFlag   bool   `json:"books_flag,omitempty"`
}

// ResourceAvailabilityRequest checks whether a resource can be rented.
type ResourceAvailabilityRequest struct {
	ResourceID int `json:"resource_id"`
}

// RentalRequest rents a resource for the implicit 7-day term.
type RentalRequest struct {
	ResourceID      int    `json:"resource_id"`
	UserID          int    `json:"user_id"`
	ReservationDate string `json:"reservation_date"`
	ReturnDate      string `json:"return_date"`
}
