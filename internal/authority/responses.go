package authority

// Literal response strings of the authority's API.
const (
	respAlreadyRegistered   = "already registered"
	respNoCHI               = "must specify CHI"
	respRegistrationSuccess = "registered new"
	respTrue                = "True"
	respPlaceOrderFailure   = "must provide individual_id and catering_id. The " +
		"individual and the catering must be registered before placing an order"
)
