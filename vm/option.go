// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/vm"
)

const Namespace = "controller"

func With() vm.Option {
	return vm.NewOption(Namespace, struct{}{}, func(_ api.VM, _ struct{}) (vm.Opt, error) {
		return vm.NewOpt(vm.WithVMAPIs(jsonRPCServerFactory{})), nil
	})
}
