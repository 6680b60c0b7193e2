package services

import (
	"github.com/blogem/visitlog/repositories"
)

// Services holds all service instances
type Services struct {
	Visits VisitorLogService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Visits: NewVisitorLogService(repos.Visits),
	}
}
