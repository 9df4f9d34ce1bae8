package auth

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta el bootstrap de empresa + owner dentro de una
// transacción: ambos inserts se confirman juntos o ninguno persiste.
// La implementación vive en infrastructure.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
	) error) error
}
