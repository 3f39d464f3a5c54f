package burnchain

// BurnchainBlockHeader is the normalized, variant-independent form of a
// burn-chain block header. Pure data, no behavior.
type BurnchainBlockHeader struct {
	BlockHeight     uint64
	BlockHash       BurnchainHeaderHash
	ParentBlockHash BurnchainHeaderHash
	NumTxs          uint64
	Timestamp       uint64
}

// BurnchainBlock is one burn-chain block, abstracted over the supported
// burn-chain encodings. Like BurnchainTransaction it is a closed sum; a new
// burn-chain source adds a variant here and extends every accessor.
type BurnchainBlock interface {
	// Height returns the burn-chain height of the block.
	Height() uint64

	// BlockHash returns the hash identifying the block.
	BlockHash() BurnchainHeaderHash

	// ParentBlockHash returns the hash of the block's parent. Parent
	// descent is validated by the indexer before a block reaches this
	// package.
	ParentBlockHash() BurnchainHeaderHash

	// Transactions returns the block's operations in ascending VtxIndex
	// order.
	Transactions() []BurnchainTransaction

	// Header returns the normalized header of the block.
	Header() *BurnchainBlockHeader

	isBurnchainBlock()
}

// StacksHyperBlock is a layer-1 Stacks block with its hyperchain-relevant
// operations parsed into Ops. It is the layer-1 variant of BurnchainBlock.
type StacksHyperBlock struct {
	// CurrentBlock is the id of the layer-1 block.
	CurrentBlock StacksBlockID

	// ParentBlock is the id of the layer-1 parent block.
	ParentBlock StacksBlockID

	// BlockHeight is the layer-1 height of the block.
	BlockHeight uint64

	// Ops holds the block's operations, ordered by ascending EventIndex.
	Ops []StacksHyperOp
}

// Height returns the layer-1 height of the block.
func (b *StacksHyperBlock) Height() uint64 {
	return b.BlockHeight
}

// BlockHash returns the layer-1 block id in burn header hash form.
func (b *StacksHyperBlock) BlockHash() BurnchainHeaderHash {
	return b.CurrentBlock.BurnchainHeaderHash()
}

// ParentBlockHash returns the layer-1 parent block id in burn header hash
// form.
func (b *StacksHyperBlock) ParentBlockHash() BurnchainHeaderHash {
	return b.ParentBlock.BurnchainHeaderHash()
}

// Transactions returns the block's operations wrapped as
// BurnchainTransactions, in the order they appear in Ops.
func (b *StacksHyperBlock) Transactions() []BurnchainTransaction {
	txs := make([]BurnchainTransaction, 0, len(b.Ops))
	for i := range b.Ops {
		txs = append(txs, &StacksBaseTransaction{Op: b.Ops[i]})
	}
	return txs
}

// Header returns the normalized header of the block. Layer-1 Stacks events
// carry no burn-block timestamp, so Timestamp is 0 for this variant.
func (b *StacksHyperBlock) Header() *BurnchainBlockHeader {
	return &BurnchainBlockHeader{
		BlockHeight:     b.BlockHeight,
		BlockHash:       b.CurrentBlock.BurnchainHeaderHash(),
		ParentBlockHash: b.ParentBlock.BurnchainHeaderHash(),
		NumTxs:          uint64(len(b.Ops)),
		Timestamp:       0,
	}
}

func (b *StacksHyperBlock) isBurnchainBlock() {}
