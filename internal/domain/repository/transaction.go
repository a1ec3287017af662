package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a transaction. A non-nil error from fn rolls
	// everything back; otherwise the transaction commits.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewOtpRepository() OtpRepository
	NewResetTicketRepository() ResetTicketRepository
}
