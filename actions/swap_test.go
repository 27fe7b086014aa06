// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/kaupangdx/dex-runtime/pricing"
	"github.com/kaupangdx/dex-runtime/storage"
)

// assertBalances checks the actor and pool holdings of both pool tokens.
func assertBalances(addr codec.Address, actorOne, actorTwo, poolOne, poolTwo uint64) func(context.Context, *testing.T, state.Mutable) {
	return func(ctx context.Context, t *testing.T, mu state.Mutable) {
		req := require.New(t)

		balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, addr)
		req.NoError(err)
		req.Equal(actorOne, balance)
		balance, err = storage.GetTokenAccountBalanceNoController(ctx, mu, tokenTwoAddress, addr)
		req.NoError(err)
		req.Equal(actorTwo, balance)

		balance, err = storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, poolAddress)
		req.NoError(err)
		req.Equal(poolOne, balance)
		balance, err = storage.GetTokenAccountBalanceNoController(ctx, mu, tokenTwoAddress, poolAddress)
		req.NoError(err)
		req.Equal(poolTwo, balance)
	}
}

func TestSwaps(t *testing.T) {
	req := require.New(t)

	addr := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()

	setupActions := []chain.Action{
		&CreateToken{
			Name:     []byte(TokenOneName),
			Symbol:   []byte(TokenOneSymbol),
			Metadata: []byte(TokenOneMetadata),
		},
		&CreateToken{
			Name:     []byte(TokenTwoName),
			Symbol:   []byte(TokenTwoSymbol),
			Metadata: []byte(TokenTwoMetadata),
		},
		&MintToken{
			To:    addr,
			Token: tokenOneAddress,
			Value: InitialTokenMint,
		},
		&MintToken{
			To:    addr,
			Token: tokenTwoAddress,
			Value: InitialTokenMint,
		},
	}

	for _, action := range setupActions {
		_, err := action.Execute(context.Background(), nil, store, 0, addr, ids.Empty)
		req.NoError(err)
	}

	tests := []chaintest.ActionTest{
		{
			Name: "Sell with identical tokens fails",
			Action: &Sell{
				TokenIn:      tokenOneAddress,
				TokenOut:     tokenOneAddress,
				AmountIn:     100,
				MinAmountOut: 1,
			},
			ExpectedErr: ErrOutputIdenticalTokens,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Buy with identical tokens fails",
			Action: &Buy{
				TokenIn:     tokenOneAddress,
				TokenOut:    tokenOneAddress,
				AmountOut:   100,
				MaxAmountIn: 1_000,
			},
			ExpectedErr: ErrOutputIdenticalTokens,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Sell against a missing pool fails",
			Action: &Sell{
				TokenIn:      tokenOneAddress,
				TokenOut:     tokenTwoAddress,
				AmountIn:     100,
				MinAmountOut: 1,
			},
			ExpectedErr: ErrOutputPoolDoesNotExist,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Buy against a missing pool fails",
			Action: &Buy{
				TokenIn:     tokenOneAddress,
				TokenOut:    tokenTwoAddress,
				AmountOut:   100,
				MaxAmountIn: 1_000,
			},
			ExpectedErr: ErrOutputPoolDoesNotExist,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Seed the pool",
			Action: &CreatePool{
				TokenIn:       tokenOneAddress,
				TokenOut:      tokenTwoAddress,
				AmountInSeed:  SeedAmountOne,
				AmountOutSeed: SeedAmountTwo,
			},
			ExpectedOutputs: (&CreatePoolResult{
				PoolAddress:    poolAddress,
				LPTokenAddress: lpTokenAddress,
			}).Bytes(),
			State:     store,
			Actor:     addr,
			Assertion: assertBalances(addr, 4_000, 3_000, 1_000, 2_000),
		},
		{
			Name: "Sell below the output floor fails and moves nothing",
			Action: &Sell{
				TokenIn:      tokenOneAddress,
				TokenOut:     tokenTwoAddress,
				AmountIn:     100,
				MinAmountOut: 182,
			},
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       store,
			Actor:       addr,
			Assertion:   assertBalances(addr, 4_000, 3_000, 1_000, 2_000),
		},
		{
			Name: "Sell at the exact output floor",
			Action: &Sell{
				TokenIn:      tokenOneAddress,
				TokenOut:     tokenTwoAddress,
				AmountIn:     100,
				MinAmountOut: 181,
			},
			ExpectedOutputs: (&SellResult{
				AmountOut: 181,
			}).Bytes(),
			State:     store,
			Actor:     addr,
			Assertion: assertBalances(addr, 3_900, 3_181, 1_100, 1_819),
		},
		{
			Name: "Buy above the input ceiling fails and moves nothing",
			Action: &Buy{
				TokenIn:     tokenOneAddress,
				TokenOut:    tokenTwoAddress,
				AmountOut:   200,
				MaxAmountIn: 134,
			},
			ExpectedErr: ErrOutputSlippageExceeded,
			State:       store,
			Actor:       addr,
			Assertion:   assertBalances(addr, 3_900, 3_181, 1_100, 1_819),
		},
		{
			Name: "Buy at the exact input ceiling",
			Action: &Buy{
				TokenIn:     tokenOneAddress,
				TokenOut:    tokenTwoAddress,
				AmountOut:   200,
				MaxAmountIn: 135,
			},
			ExpectedOutputs: (&BuyResult{
				AmountIn: 135,
			}).Bytes(),
			State:     store,
			Actor:     addr,
			Assertion: assertBalances(addr, 3_765, 3_381, 1_235, 1_619),
		},
		{
			Name: "Sell the reverse direction on the same pool",
			Action: &Sell{
				TokenIn:      tokenTwoAddress,
				TokenOut:     tokenOneAddress,
				AmountIn:     100,
				MinAmountOut: 1,
			},
			ExpectedOutputs: (&SellResult{
				AmountOut: 71,
			}).Bytes(),
			State:     store,
			Actor:     addr,
			Assertion: assertBalances(addr, 3_836, 3_281, 1_164, 1_719),
		},
		{
			Name: "Buy more than the reserve holds fails",
			Action: &Buy{
				TokenIn:     tokenOneAddress,
				TokenOut:    tokenTwoAddress,
				AmountOut:   5_000,
				MaxAmountIn: 1_000_000,
			},
			ExpectedErr: pricing.ErrInsufficientLiquidity,
			State:       store,
			Actor:       addr,
			Assertion:   assertBalances(addr, 3_836, 3_281, 1_164, 1_719),
		},
		{
			Name: "Buy the whole reserve fails",
			Action: &Buy{
				TokenIn:     tokenOneAddress,
				TokenOut:    tokenTwoAddress,
				AmountOut:   1_719,
				MaxAmountIn: 1_000_000,
			},
			ExpectedErr: pricing.ErrInvariantViolation,
			State:       store,
			Actor:       addr,
			Assertion:   assertBalances(addr, 3_836, 3_281, 1_164, 1_719),
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
