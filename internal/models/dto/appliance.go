package dto

import "github.com/hongminglow/eletronicos-be/internal/models"

// ApplianceRequest is the body accepted by create and full-replace update.
// consumo and status are kept as sent; the store decides what it accepts.
type ApplianceRequest struct {
	Name        string           `json:"eletronico"`
	Consumption models.Scalar    `json:"consumo"`
	Active      models.Scalar    `json:"status"`
	Cost        models.LooseText `json:"gasto"`
	Description string           `json:"descricao"`
}

// Appliance converts the request into a model without an id.
func (r ApplianceRequest) Appliance() models.Appliance {
	return models.Appliance{
		Name:        r.Name,
		Consumption: r.Consumption,
		Active:      r.Active,
		Cost:        r.Cost,
		Description: r.Description,
	}
}
