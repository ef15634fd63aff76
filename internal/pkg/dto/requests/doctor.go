package requests

// UpdateDoctorStatus is the body sent to the upstream update-status endpoint.
type UpdateDoctorStatus struct {
	IsOnline bool `json:"isOnline"`
}

// DoctorListFilter narrows the online-doctor listing. Both fields are optional.
type DoctorListFilter struct {
	Specialization string
	Search         string
}
