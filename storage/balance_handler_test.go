// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
)

func TestBalanceHandlerAddBalance(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	bh := &BalanceHandler{}

	addr := codectest.NewRandomAddress()

	req.NoError(bh.AddBalance(ctx, addr, store, 100))
	balance, err := bh.GetBalance(ctx, addr, store)
	req.NoError(err)
	req.Equal(uint64(100), balance)

	req.NoError(bh.AddBalance(ctx, addr, store, 50))
	balance, err = bh.GetBalance(ctx, addr, store)
	req.NoError(err)
	req.Equal(uint64(150), balance)
}

func TestBalanceHandlerAddBalanceOverflow(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	bh := &BalanceHandler{}

	addr := codectest.NewRandomAddress()
	req.NoError(SetTokenAccountBalance(ctx, store, CoinAddress, addr, math.MaxUint64))

	// A credit past MaxUint64 must fail, not wrap
	req.Error(bh.AddBalance(ctx, addr, store, 2))
	balance, err := bh.GetBalance(ctx, addr, store)
	req.NoError(err)
	req.Equal(uint64(math.MaxUint64), balance)
}

func TestBalanceHandlerDeduct(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	bh := &BalanceHandler{}

	addr := codectest.NewRandomAddress()
	req.NoError(SetTokenAccountBalance(ctx, store, CoinAddress, addr, 100))

	req.NoError(bh.CanDeduct(ctx, addr, store, 100))
	req.ErrorIs(bh.CanDeduct(ctx, addr, store, 101), ErrInsufficientBalance)

	req.NoError(bh.Deduct(ctx, addr, store, 60))
	balance, err := bh.GetBalance(ctx, addr, store)
	req.NoError(err)
	req.Equal(uint64(40), balance)

	req.ErrorIs(bh.Deduct(ctx, addr, store, 41), ErrInsufficientBalance)
	balance, err = bh.GetBalance(ctx, addr, store)
	req.NoError(err)
	req.Equal(uint64(40), balance)
}
