package service

import (
	"context"

	"github.com/learnhub/admin-console/internal/apiclient"
	"github.com/learnhub/admin-console/internal/core"
	"github.com/learnhub/admin-console/internal/domain/model"
)

const walletBasePath = "/wallet"

// WalletServiceOptions groups dependencies for WalletService.
type WalletServiceOptions struct {
	Requester core.Requester // Required
}

// WalletService is the client for user wallets.
type WalletService struct {
	requester core.Requester
}

// NewWalletService constructs a new WalletService.
func NewWalletService(opts WalletServiceOptions) *WalletService {
	if opts.Requester == nil {
		panic("requester is required")
	}
	return &WalletService{requester: opts.Requester}
}

// List returns every wallet.
func (s *WalletService) List(ctx context.Context) ([]model.Wallet, error) {
	return call[[]model.Wallet](ctx, s.requester, walletBasePath,
		apiclient.Get("", "Failed to retrieve wallets"))
}

// GetByUser returns the wallet owned by a user.
func (s *WalletService) GetByUser(ctx context.Context, userID string) (*model.Wallet, error) {
	return call[*model.Wallet](ctx, s.requester, walletBasePath,
		apiclient.Get("/user"+idPath(userID), "Failed to retrieve wallet"))
}

// Transactions returns the ledger of a wallet.
func (s *WalletService) Transactions(ctx context.Context, walletID string) ([]model.Transaction, error) {
	return call[[]model.Transaction](ctx, s.requester, walletBasePath,
		apiclient.Get(idPath(walletID)+"/transactions", "Failed to retrieve transactions"))
}

// Credit tops up a user's wallet.
func (s *WalletService) Credit(ctx context.Context, req *model.CreditRequest) (*model.Transaction, error) {
	return call[*model.Transaction](ctx, s.requester, walletBasePath,
		apiclient.Post("/credit", req, "Failed to credit wallet"))
}
