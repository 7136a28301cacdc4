package usecase

import "fleet_bill_verifier/internal/domain/entities"

// DemoLineItems is a sample purchase order as typed by a fleet maintenance clerk,
// spelling mistakes included.
func DemoLineItems() []entities.LineItem {
	return []entities.LineItem{
		{Quantity: 2, Cost: 93.12, Description: "A/C RECIEVER - DRYER", Type: "PART", ATACode: "01001065", Correction: "REPLACE", Cause: "DOES NOT OPERATE PROPERLY"},
		{Quantity: 3, Cost: 397.50, Description: "A/C RECIEVER - DRYER", Type: "LABOR", ATACode: "01001065", Correction: "REPLACE", Cause: "DOES NOT OPERATE PROPERLY"},
		{Quantity: 2, Cost: 265.00, Description: "A/C REFRIGERANT, (PER LB)", Type: "LABOR", ATACode: "01001273", Correction: "REPLACE", Cause: "MAINTENANCE"},
		{Quantity: 1, Cost: 100.00, Description: "M.O.S.P.  MOBILE ONSITE SERVICE PREMIUM", Type: "PM", ATACode: "1B008001", Correction: "PREVENTIVE MAINT.", Cause: "NOT SUPPLIED"},
		{Quantity: 4, Cost: 530.00, Description: "REEFER COMPRESSOR", Type: "LABOR", ATACode: "82002001", Correction: "REPLACE", Cause: "NOT SUPPLIED"},
		{Quantity: 1, Cost: 674.98, Description: "REEFER COMPRESSOR", Type: "PART", ATACode: "82002001", Correction: "REPLACE", Cause: "NOT SUPPLIED"},
		{Quantity: 7, Cost: 267.68, Description: "A/C REFRIGERANT, (PER LB)", Type: "PART", ATACode: "01001273", Correction: "REPLACE", Cause: "MAINTENANCE"},
	}
}
