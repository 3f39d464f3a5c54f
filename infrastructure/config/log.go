// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2021 The Hyperchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"github.com/hyperchainnet/hyperchaind/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.CNFG)
