// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.BalanceHandler = (*BalanceHandler)(nil)

// BalanceHandler settles fees against the native coin, which is an
// ordinary token account under [CoinAddress].
type BalanceHandler struct{}

func (*BalanceHandler) SponsorStateKeys(addr codec.Address) state.Keys {
	return state.Keys{
		string(TokenAccountBalanceKey(CoinAddress, addr)): state.All,
	}
}

func (*BalanceHandler) CanDeduct(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, im, CoinAddress, addr)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientBalance
	}
	return nil
}

func (*BalanceHandler) Deduct(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, mu, CoinAddress, addr)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientBalance
	}
	return SetTokenAccountBalance(ctx, mu, CoinAddress, addr, balance-amount)
}

func (*BalanceHandler) AddBalance(
	ctx context.Context,
	addr codec.Address,
	mu state.Mutable,
	amount uint64,
) error {
	balance, err := GetTokenAccountBalanceNoController(ctx, mu, CoinAddress, addr)
	if err != nil {
		return err
	}
	newBalance, err := smath.Add(balance, amount)
	if err != nil {
		return err
	}
	return SetTokenAccountBalance(ctx, mu, CoinAddress, addr, newBalance)
}

func (*BalanceHandler) GetBalance(
	ctx context.Context,
	addr codec.Address,
	im state.Immutable,
) (uint64, error) {
	return GetTokenAccountBalanceNoController(ctx, im, CoinAddress, addr)
}
