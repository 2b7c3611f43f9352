package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// O contexto retornado carrega a transação e deve ser repassado aos repositories.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
