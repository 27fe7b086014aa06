// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/hypersdk/api/indexer"
	"github.com/ava-labs/hypersdk/api/jsonrpc"
	"github.com/ava-labs/hypersdk/api/ws"
	"github.com/ava-labs/hypersdk/auth"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/extension/externalsubscriber"
	"github.com/ava-labs/hypersdk/genesis"
	"github.com/ava-labs/hypersdk/state/metadata"
	"github.com/ava-labs/hypersdk/vm"

	"github.com/kaupangdx/dex-runtime/actions"
	"github.com/kaupangdx/dex-runtime/storage"
)

var (
	ActionParser *codec.TypeParser[chain.Action]
	AuthParser   *codec.TypeParser[chain.Auth]
	OutputParser *codec.TypeParser[codec.Typed]
)

// Setup types
func init() {
	ActionParser = codec.NewTypeParser[chain.Action]()
	AuthParser = codec.NewTypeParser[chain.Auth]()
	OutputParser = codec.NewTypeParser[codec.Typed]()

	errs := &wrappers.Errs{}
	errs.Add(
		// When registering new actions, ALWAYS make sure to append at the end.
		ActionParser.Register(&actions.CreateToken{}, actions.UnmarshalCreateToken),
		ActionParser.Register(&actions.MintToken{}, actions.UnmarshalMintToken),
		ActionParser.Register(&actions.TransferToken{}, actions.UnmarshalTransferToken),
		ActionParser.Register(&actions.CreatePool{}, actions.UnmarshalCreatePool),
		ActionParser.Register(&actions.Sell{}, actions.UnmarshalSell),
		ActionParser.Register(&actions.Buy{}, actions.UnmarshalBuy),

		// When registering new auth, ALWAYS make sure to append at the end.
		AuthParser.Register(&auth.ED25519{}, auth.UnmarshalED25519),
		AuthParser.Register(&auth.SECP256R1{}, auth.UnmarshalSECP256R1),
		AuthParser.Register(&auth.BLS{}, auth.UnmarshalBLS),

		OutputParser.Register(&actions.CreateTokenResult{}, actions.UnmarshalCreateTokenResult),
		OutputParser.Register(&actions.MintTokenResult{}, actions.UnmarshalMintTokenResult),
		OutputParser.Register(&actions.TransferTokenResult{}, actions.UnmarshalTransferTokenResult),
		OutputParser.Register(&actions.CreatePoolResult{}, actions.UnmarshalCreatePoolResult),
		OutputParser.Register(&actions.SellResult{}, actions.UnmarshalSellResult),
		OutputParser.Register(&actions.BuyResult{}, actions.UnmarshalBuyResult),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

// New returns a VM with the indexer, websocket, rpc, and external subscriber apis enabled.
func New(options ...vm.Option) (*vm.VM, error) {
	opts := append([]vm.Option{
		indexer.With(),
		ws.With(),
		jsonrpc.With(),
		With(), // Add Controller API
		externalsubscriber.With(),
	}, options...)

	return NewWithOptions(opts...)
}

// NewWithOptions returns a VM with the specified options
func NewWithOptions(options ...vm.Option) (*vm.VM, error) {
	return vm.New(
		genesis.DefaultGenesisFactory{},
		&storage.BalanceHandler{},
		metadata.NewDefaultManager(),
		ActionParser,
		AuthParser,
		OutputParser,
		auth.DefaultEngines(),
		options...,
	)
}
