package burnchain

// StacksHyperOpType is the decoded payload of a layer-1 Stacks event. It is
// a closed sum: consumers switch over the concrete types and must handle
// every one of them, and new payloads are added here, never registered at
// runtime.
type StacksHyperOpType interface {
	isStacksHyperOpType()
}

// BlockCommitOp is the payload of a hyperchain block commitment found on
// the layer-1 chain.
type BlockCommitOp struct {
	// SubnetBlockHash is the hash of the committed hyperchain block.
	SubnetBlockHash BlockHeaderHash
}

func (*BlockCommitOp) isStacksHyperOpType() {}

// StacksHyperOp is one hyperchain-relevant operation replayed from the
// event stream of a layer-1 Stacks node.
type StacksHyperOp struct {
	// Txid identifies the layer-1 transaction the event came from.
	Txid Txid

	// InBlock is the id of the layer-1 block containing the event.
	InBlock StacksBlockID

	// Opcode selects which higher-level operation parser applies.
	Opcode byte

	// EventIndex is the position of the event within its block. Blocks
	// are processed in ascending EventIndex order.
	EventIndex uint32

	// Event is the decoded payload.
	Event StacksHyperOpType
}

// BurnchainTransaction is one burn-chain operation, abstracted over the
// supported burn-chain encodings. It is a closed sum: the only
// implementations live in this package, and a new burn-chain source is
// added by adding a variant here and extending every accessor, never by
// runtime registration. No consumer may reach for variant-specific fields.
type BurnchainTransaction interface {
	// TxID returns the 32-byte identifier of the operation.
	TxID() Txid

	// VtxIndex returns the position of the operation within its
	// containing block. A block's operations must be consumed in
	// ascending VtxIndex order.
	VtxIndex() uint32

	// Opcode returns the discriminant byte selecting the higher-level
	// operation parser.
	Opcode() byte

	// BurnAmount returns the base-chain value irrecoverably destroyed by
	// the operation, or 0 where the source encoding carries none.
	BurnAmount() uint64

	isBurnchainTransaction()
}

// StacksBaseTransaction is the layer-1 Stacks variant of
// BurnchainTransaction.
type StacksBaseTransaction struct {
	Op StacksHyperOp
}

// TxID returns the id of the layer-1 transaction the operation came from.
func (tx *StacksBaseTransaction) TxID() Txid {
	return tx.Op.Txid
}

// VtxIndex returns the operation's position within its layer-1 block.
func (tx *StacksBaseTransaction) VtxIndex() uint32 {
	return tx.Op.EventIndex
}

// Opcode returns the operation's discriminant byte.
func (tx *StacksBaseTransaction) Opcode() byte {
	return tx.Op.Opcode
}

// BurnAmount returns 0: layer-1 Stacks events carry no direct burn amount.
func (tx *StacksBaseTransaction) BurnAmount() uint64 {
	return 0
}

func (tx *StacksBaseTransaction) isBurnchainTransaction() {}
