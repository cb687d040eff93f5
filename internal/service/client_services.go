package service

import (
	"github.com/MKhiriev/go-family-tree/internal/adapter"
)

type ClientServices struct {
	AuthService    ClientAuthService
	ProjectService ClientProjectService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter),
		ProjectService: NewClientProjectService(serverAdapter),
	}
}
