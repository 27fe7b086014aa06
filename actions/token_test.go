// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec/codectest"
	"github.com/ava-labs/hypersdk/state"

	"github.com/kaupangdx/dex-runtime/storage"
)

func TestCreateToken(t *testing.T) {
	addr := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()

	tests := []chaintest.ActionTest{
		{
			Name: "No token with empty name",
			Action: &CreateToken{
				Name:     []byte{},
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedErr: ErrOutputTokenNameEmpty,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "No token with empty symbol",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte{},
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedErr: ErrOutputTokenSymbolEmpty,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "No token with empty metadata",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte{},
			},
			ExpectedErr: ErrOutputTokenMetadataEmpty,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "No token with oversized name",
			Action: &CreateToken{
				Name:     make([]byte, storage.MaxTokenNameSize+1),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedErr: ErrOutputTokenNameTooLarge,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "No token with oversized symbol",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   make([]byte, storage.MaxTokenSymbolSize+1),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedErr: ErrOutputTokenSymbolTooLarge,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "No token with oversized metadata",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: make([]byte, storage.MaxTokenMetadataSize+1),
			},
			ExpectedErr: ErrOutputTokenMetadataTooLarge,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Correct token creation",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: (&CreateTokenResult{
				TokenAddress: tokenOneAddress,
			}).Bytes(),
			State: store,
			Actor: addr,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				req := require.New(t)
				name, symbol, metadata, totalSupply, owner, err := storage.GetTokenInfoNoController(ctx, mu, tokenOneAddress)
				req.NoError(err)
				req.Equal([]byte(TokenOneName), name)
				req.Equal([]byte(TokenOneSymbol), symbol)
				req.Equal([]byte(TokenOneMetadata), metadata)
				req.Zero(totalSupply)
				req.Equal(addr, owner)
			},
		},
		{
			Name: "No duplicate tokens",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedErr: ErrOutputTokenAlreadyExists,
			State:       store,
			Actor:       addr,
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}

func TestMintToken(t *testing.T) {
	req := require.New(t)

	addr := codectest.NewRandomAddress()
	otherAddr := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()

	createToken := &CreateToken{
		Name:     []byte(TokenOneName),
		Symbol:   []byte(TokenOneSymbol),
		Metadata: []byte(TokenOneMetadata),
	}
	_, err := createToken.Execute(context.Background(), nil, store, 0, addr, ids.Empty)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "No zero-value mints",
			Action: &MintToken{
				To:    addr,
				Token: tokenOneAddress,
				Value: 0,
			},
			ExpectedErr: ErrOutputMintValueZero,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Minted token must exist",
			Action: &MintToken{
				To:    addr,
				Token: ghostTokenAddress,
				Value: 1,
			},
			ExpectedErr: ErrOutputTokenDoesNotExist,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Only the owner mints",
			Action: &MintToken{
				To:    addr,
				Token: tokenOneAddress,
				Value: 1,
			},
			ExpectedErr: ErrOutputTokenNotOwner,
			State:       store,
			Actor:       otherAddr,
		},
		{
			Name: "Correct mint",
			Action: &MintToken{
				To:    addr,
				Token: tokenOneAddress,
				Value: InitialTokenMint,
			},
			ExpectedOutputs: (&MintTokenResult{
				Balance: InitialTokenMint,
			}).Bytes(),
			State: store,
			Actor: addr,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				req := require.New(t)
				_, _, _, totalSupply, _, err := storage.GetTokenInfoNoController(ctx, mu, tokenOneAddress)
				req.NoError(err)
				req.Equal(uint64(InitialTokenMint), totalSupply)
			},
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}

func TestTransferToken(t *testing.T) {
	req := require.New(t)

	addr := codectest.NewRandomAddress()
	otherAddr := codectest.NewRandomAddress()
	store := chaintest.NewInMemoryStore()

	createToken := &CreateToken{
		Name:     []byte(TokenOneName),
		Symbol:   []byte(TokenOneSymbol),
		Metadata: []byte(TokenOneMetadata),
	}
	_, err := createToken.Execute(context.Background(), nil, store, 0, addr, ids.Empty)
	req.NoError(err)

	mintToken := &MintToken{
		To:    addr,
		Token: tokenOneAddress,
		Value: InitialTokenMint,
	}
	_, err = mintToken.Execute(context.Background(), nil, store, 0, addr, ids.Empty)
	req.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "No zero-value transfers",
			Action: &TransferToken{
				To:    otherAddr,
				Token: tokenOneAddress,
				Value: 0,
			},
			ExpectedErr: ErrOutputTransferValueZero,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "Transferred token must exist",
			Action: &TransferToken{
				To:    otherAddr,
				Token: ghostTokenAddress,
				Value: 1,
			},
			ExpectedErr: ErrOutputTokenDoesNotExist,
			State:       store,
			Actor:       addr,
		},
		{
			Name: "No transfers beyond the sender balance",
			Action: &TransferToken{
				To:    otherAddr,
				Token: tokenOneAddress,
				Value: InitialTokenMint + 1,
			},
			ExpectedErr: storage.ErrInsufficientBalance,
			State:       store,
			Actor:       addr,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				req := require.New(t)
				balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, addr)
				req.NoError(err)
				req.Equal(uint64(InitialTokenMint), balance)
				balance, err = storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, otherAddr)
				req.NoError(err)
				req.Zero(balance)
			},
		},
		{
			Name: "Correct transfer",
			Action: &TransferToken{
				To:    otherAddr,
				Token: tokenOneAddress,
				Value: 1_000,
			},
			ExpectedOutputs: (&TransferTokenResult{
				SenderBalance:   InitialTokenMint - 1_000,
				ReceiverBalance: 1_000,
			}).Bytes(),
			State: store,
			Actor: addr,
		},
	}

	for _, test := range tests {
		test.Run(context.Background(), t)
	}
}
