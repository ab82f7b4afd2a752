package dispense

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispense decrements stock for every pending line of a treatment and
	// marks those lines dispensed, all or nothing.
	Dispense(ctx context.Context, treatmentID string) (DispenseOutput, error)
	Status(ctx context.Context, treatmentID string) (StatusOutput, error)
}
