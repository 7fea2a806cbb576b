package domain

// ServiceCatalog maps a salon service to the stylists able to perform it.
// Stylist order is the order they are offered in.
type ServiceCatalog map[string][]string

// Stylists returns the stylists for service, or nil if the service is unknown.
func (c ServiceCatalog) Stylists(service string) []string {
	return c[service]
}

// Offers returns true if the catalog knows the service.
func (c ServiceCatalog) Offers(service string) bool {
	_, ok := c[service]
	return ok
}

// CanPerform returns true if stylist is listed for service.
func (c ServiceCatalog) CanPerform(service, stylist string) bool {
	for _, st := range c[service] {
		if st == stylist {
			return true
		}
	}
	return false
}
