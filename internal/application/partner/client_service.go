package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/partner"
	"github.com/partserp/backend/internal/domain/shared"
)

// ClientService maintains the client roster
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client with a unique code
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	client.ContactName = req.ContactName
	client.Phone = req.Phone
	client.Email = req.Email
	client.Address = req.Address
	client.City = req.City
	client.TaxNumber = req.TaxNumber
	client.Notes = req.Notes

	if _, err := s.clientRepo.FindByCode(ctx, client.Code); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A client with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Update updates a client's contact information
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := client.Update(req.Name, req.ContactName, req.Phone, req.Email, req.Address, req.City); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// Deactivate marks the client inactive
func (s *ClientService) Deactivate(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := client.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves active clients with pagination
func (s *ClientService) List(ctx context.Context, filter ListFilter) ([]ClientResponse, int64, error) {
	domainFilter := buildListFilter(&filter)

	clients, err := s.clientRepo.FindActive(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, total, nil
}
