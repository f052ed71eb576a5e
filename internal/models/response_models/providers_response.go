package response_models

// ProviderStatus mirrors one registry slot for the two generation backends.
// Availability is fixed at registry construction time.
type ProviderStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ServiceFailure is one human-readable initialization failure captured by the
// registry, in construction order.
type ServiceFailure struct {
	Service string `json:"service"`
	Reason  string `json:"reason"`
}

type ProvidersReport struct {
	Providers []ProviderStatus `json:"providers"`
	Failures  []ServiceFailure `json:"failures,omitempty"`
}
