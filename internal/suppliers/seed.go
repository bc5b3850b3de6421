package suppliers

import (
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// seedSuppliers returns the demo registry content.
func seedSuppliers() []model.Supplier {
	seeded := func(day int) time.Time {
		return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	}

	return []model.Supplier{
		{
			ID:          newID(),
			Name:        "Tech Solutions Ltda",
			Email:       "contato@techsolutions.com",
			CNPJ:        "12.345.678/0001-90",
			Phone:       "(11) 99999-9999",
			Address:     "Rua das Flores, 123",
			City:        "São Paulo",
			State:       "SP",
			ZipCode:     "01234-567",
			Status:      model.SupplierActive,
			Description: "Fornecedor de soluções tecnológicas",
			CreatedAt:   seeded(15),
			UpdatedAt:   seeded(15),
		},
		{
			ID:          newID(),
			Name:        "Materiais Industriais SA",
			Email:       "vendas@materiais.com",
			CNPJ:        "98.765.432/0001-10",
			Phone:       "(11) 88888-8888",
			Address:     "Av. Industrial, 456",
			City:        "São Paulo",
			State:       "SP",
			ZipCode:     "04567-890",
			Status:      model.SupplierActive,
			Description: "Fornecedor de materiais industriais",
			CreatedAt:   seeded(10),
			UpdatedAt:   seeded(10),
		},
		{
			ID:          newID(),
			Name:        "Logística Express",
			Email:       "info@logistica.com",
			CNPJ:        "11.222.333/0001-44",
			Phone:       "(11) 77777-7777",
			Address:     "Rua do Transporte, 789",
			City:        "São Paulo",
			State:       "SP",
			ZipCode:     "07890-123",
			Status:      model.SupplierInactive,
			Description: "Serviços de logística e transporte",
			CreatedAt:   seeded(5),
			UpdatedAt:   seeded(5),
		},
		{
			ID:          newID(),
			Name:        "Equipamentos Pro",
			Email:       "comercial@equipamentos.com",
			CNPJ:        "55.666.777/0001-88",
			Phone:       "(11) 66666-6666",
			Address:     "Av. dos Equipamentos, 321",
			City:        "São Paulo",
			State:       "SP",
			ZipCode:     "05432-109",
			Status:      model.SupplierActive,
			Description: "Equipamentos profissionais",
			CreatedAt:   seeded(2),
			UpdatedAt:   seeded(2),
		},
	}
}
