package models

const ServiceName = "payment-service"

type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func UpStatus() HealthStatus {
	return HealthStatus{Status: "UP", Service: ServiceName}
}
