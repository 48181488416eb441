package multisend

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/smartcontractkit/multisend/internal/testutils/chaintest"
	"github.com/smartcontractkit/multisend/sdk"
	sdkerrors "github.com/smartcontractkit/multisend/sdk/errors"
	"github.com/smartcontractkit/multisend/sdk/evm"
	"github.com/smartcontractkit/multisend/sdk/mocks"
	"github.com/smartcontractkit/multisend/types"
)

var (
	testMultiSend = common.HexToAddress(evm.DefaultMultiSendAddress)
	testTargetA   = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01")
	testTargetB   = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb02")
)

func operationPtr(op types.Operation) *types.Operation {
	return &op
}

func TestBatch_Transaction(t *testing.T) {
	t.Parallel()

	twoCalls := func() *Batch {
		return NewBatch().
			Add(testTargetA, big.NewInt(0), []byte{0x12, 0x34}).
			Add(testTargetB, big.NewInt(100), nil)
	}

	tests := []struct {
		name          string
		giveBatch     *Batch
		giveOpts      SubmitOpts
		wantTo        common.Address
		wantOperation types.Operation
		wantValue     *big.Int
		wantMultiSend bool
		wantErr       error
	}{
		{
			name:          "defaults to delegatecall",
			giveBatch:     twoCalls(),
			giveOpts:      SubmitOpts{Value: big.NewInt(100)},
			wantTo:        testMultiSend,
			wantOperation: types.OperationDelegateCall,
			wantValue:     big.NewInt(100),
			wantMultiSend: true,
		},
		{
			name:          "impersonation defaults to call",
			giveBatch:     twoCalls(),
			giveOpts:      SubmitOpts{Value: big.NewInt(100), Impersonate: true},
			wantTo:        testMultiSend,
			wantOperation: types.OperationCall,
			wantValue:     big.NewInt(100),
			wantMultiSend: true,
		},
		{
			name:          "explicit operation wins over impersonation",
			giveBatch:     twoCalls(),
			giveOpts:      SubmitOpts{Value: big.NewInt(150), Impersonate: true, Operation: operationPtr(types.OperationDelegateCall)},
			wantTo:        testMultiSend,
			wantOperation: types.OperationDelegateCall,
			wantValue:     big.NewInt(150),
			wantMultiSend: true,
		},
		{
			name:          "zero value batch without value",
			giveBatch:     NewBatch().Add(testTargetA, nil, []byte{0x01}),
			giveOpts:      SubmitOpts{},
			wantTo:        testMultiSend,
			wantOperation: types.OperationDelegateCall,
			wantValue:     big.NewInt(0),
			wantMultiSend: true,
		},
		{
			name:          "single call collapsed",
			giveBatch:     NewBatch().Add(testTargetB, big.NewInt(7), []byte{0x01}),
			giveOpts:      SubmitOpts{Value: big.NewInt(7), CollapseSingleCall: true},
			wantTo:        testTargetB,
			wantOperation: types.OperationCall,
			wantValue:     big.NewInt(7),
		},
		{
			name:          "single delegatecall is not collapsed",
			giveBatch:     NewBatch().AddCall(types.Call{Operation: types.OperationDelegateCall, To: testTargetB}),
			giveOpts:      SubmitOpts{CollapseSingleCall: true},
			wantTo:        testMultiSend,
			wantOperation: types.OperationDelegateCall,
			wantValue:     big.NewInt(0),
			wantMultiSend: true,
		},
		{
			name:      "insufficient value",
			giveBatch: twoCalls(),
			giveOpts:  SubmitOpts{Value: big.NewInt(99)},
			wantErr:   ErrInsufficientValue,
		},
		{
			name:      "missing value",
			giveBatch: twoCalls(),
			giveOpts:  SubmitOpts{},
			wantErr:   ErrInsufficientValue,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.giveBatch.Transaction(testMultiSend, tt.giveOpts)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTo, got.To)
			assert.Equal(t, tt.wantOperation, got.Operation)
			assert.Equal(t, 0, tt.wantValue.Cmp(got.Value))

			if tt.wantMultiSend {
				blob, err := evm.UnpackMultiSend(got.Data)
				require.NoError(t, err)

				want, err := tt.giveBatch.Encode()
				require.NoError(t, err)
				assert.Equal(t, want, blob)
			} else {
				assert.Equal(t, tt.giveBatch.Calls()[0].Data, []byte(got.Data))
			}
		})
	}
}

func TestBatch_Transaction_ConcurrentAdd(t *testing.T) {
	t.Parallel()

	b := NewBatch().Add(testTargetA, big.NewInt(1), nil)
	supplied := big.NewInt(20)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 40; i++ {
			b.Add(testTargetB, big.NewInt(1), []byte{0x01})
		}
	}()

	for i := 0; i < 200; i++ {
		tx, err := b.Transaction(testMultiSend, SubmitOpts{Value: supplied})
		if err != nil {
			require.ErrorIs(t, err, ErrInsufficientValue)
			continue
		}

		blob, err := evm.UnpackMultiSend(tx.Data)
		require.NoError(t, err)
		calls, err := evm.DecodeCalls(blob)
		require.NoError(t, err)

		sum := new(big.Int)
		for _, call := range calls {
			sum.Add(sum, call.Value)
		}
		assert.LessOrEqual(t, sum.Cmp(tx.Value), 0)
	}

	wg.Wait()
	assert.Equal(t, 41, b.Len())
}

func TestValidateCalls_UsesGivenSnapshot(t *testing.T) {
	t.Parallel()

	b := NewBatch().Add(testTargetA, big.NewInt(5), nil)
	calls := b.Calls()
	b.Add(testTargetB, big.NewInt(100), nil)

	require.NoError(t, validateCalls(calls, big.NewInt(5)))
	require.ErrorIs(t, b.Validate(big.NewInt(5)), ErrInsufficientValue)

	tx, err := b.transaction(testMultiSend, calls, SubmitOpts{Value: big.NewInt(5)})
	require.NoError(t, err)

	blob, err := evm.UnpackMultiSend(tx.Data)
	require.NoError(t, err)
	decoded, err := evm.DecodeCalls(blob)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, testTargetA, decoded[0].To)
}

func TestBatch_Transaction_ValueIsCopied(t *testing.T) {
	t.Parallel()

	value := big.NewInt(10)
	tx, err := NewBatch().Add(testTargetA, big.NewInt(10), nil).Transaction(testMultiSend, SubmitOpts{Value: value})
	require.NoError(t, err)

	tx.Value.SetInt64(0)
	assert.Equal(t, int64(10), value.Int64())
}

func TestBatch_Transaction_EndToEndLayout(t *testing.T) {
	t.Parallel()

	b := NewBatch().
		Add(testTargetA, big.NewInt(0), []byte{0x12, 0x34}).
		Add(testTargetB, big.NewInt(100), []byte{})
	assert.Equal(t, int64(100), b.RequiredValue().Int64())

	tx, err := b.Transaction(testMultiSend, SubmitOpts{Value: big.NewInt(100)})
	require.NoError(t, err)
	assert.Equal(t, types.OperationDelegateCall, tx.Operation)

	blob, err := evm.UnpackMultiSend(tx.Data)
	require.NoError(t, err)

	want := "00" + "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"1234" +
		"00" + "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb02" +
		"0000000000000000000000000000000000000000000000000000000000000064" +
		"0000000000000000000000000000000000000000000000000000000000000000"
	assert.Equal(t, want, hex.EncodeToString(blob))
}

func TestBatch_Submit(t *testing.T) {
	t.Parallel()

	result := types.TransactionResult{Hash: "0xabc", ChainFamily: "evm"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		core, logs := observer.New(zap.InfoLevel)
		ctx := sdk.WithLogger(context.Background(), zap.New(core).Sugar())

		resolver := mocks.NewAddressResolver(t)
		resolver.EXPECT().Resolve(chaintest.Chain1Selector).Return(testMultiSend, nil).Once()

		submitter := mocks.NewSubmitter(t)
		submitter.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(tx types.Transaction) bool {
			return tx.To == testMultiSend &&
				tx.Operation == types.OperationDelegateCall &&
				tx.Value.Cmp(big.NewInt(100)) == 0 &&
				evm.IsMultiSendCalldata(tx.Data)
		})).Return(result, nil).Once()

		b := NewBatch().Add(testTargetA, nil, []byte{0x12, 0x34}).Add(testTargetB, big.NewInt(100), nil)
		got, err := b.Submit(ctx, resolver, chaintest.Chain1Selector, submitter, SubmitOpts{Value: big.NewInt(100)})
		require.NoError(t, err)
		assert.Equal(t, result, got)
		require.Equal(t, 2, logs.Len())
		assert.Contains(t, logs.All()[0].Message, "submitting batch of 2 calls")
	})

	t.Run("insufficient value stops before resolution", func(t *testing.T) {
		t.Parallel()

		resolver := mocks.NewAddressResolver(t)
		submitter := mocks.NewSubmitter(t)

		b := NewBatch().Add(testTargetB, big.NewInt(100), nil)
		_, err := b.Submit(context.Background(), resolver, chaintest.Chain1Selector, submitter, SubmitOpts{Value: big.NewInt(1)})
		require.ErrorIs(t, err, ErrInsufficientValue)

		var insufficient *InsufficientValueError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(100), insufficient.Required.Int64())
	})

	t.Run("unsupported chain", func(t *testing.T) {
		t.Parallel()

		resolver := mocks.NewAddressResolver(t)
		resolver.EXPECT().Resolve(chaintest.Chain4Selector).
			Return(common.Address{}, sdkerrors.NewUnsupportedChainError(chaintest.Chain4Selector, "chain family solana")).Once()
		submitter := mocks.NewSubmitter(t)

		_, err := NewBatch().Submit(context.Background(), resolver, chaintest.Chain4Selector, submitter, SubmitOpts{})
		require.ErrorIs(t, err, sdkerrors.ErrUnsupportedChain)
	})

	t.Run("submitter failure is wrapped", func(t *testing.T) {
		t.Parallel()

		resolver := mocks.NewAddressResolver(t)
		resolver.EXPECT().Resolve(chaintest.Chain2Selector).Return(testMultiSend, nil).Once()

		boom := errors.New("boom")
		submitter := mocks.NewSubmitter(t)
		submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(types.TransactionResult{}, boom).Once()

		core, _ := observer.New(zap.InfoLevel)
		ctx := sdk.WithLogger(context.Background(), zap.New(core).Sugar())

		_, err := NewBatch().Add(testTargetA, nil, nil).Submit(ctx, resolver, chaintest.Chain2Selector, submitter, SubmitOpts{})
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to submit batch on chain 16015286601757825753")
	})
}
