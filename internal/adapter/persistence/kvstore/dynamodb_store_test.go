package kvstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items   map[string]map[string]types.AttributeValue
	lastPut *dynamodb.PutItemInput
	err     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(m map[string]types.AttributeValue) string {
	if s, ok := m["key"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPut = in
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestDynamoStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	s := NewDynamoStore(fake, "")
	s.now = func() time.Time { return time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC) }

	_, found, err := s.Get(ctx, "default:cart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "default:cart", `[]`))
	require.NotNil(t, fake.lastPut)
	assert.Equal(t, DefaultTableName, aws.ToString(fake.lastPut.TableName))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "2025-05-02T08:00:00Z"}, fake.lastPut.Item["updated_at"])

	v, found, err := s.Get(ctx, "default:cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Remove(ctx, "default:cart"))
	_, found, err = s.Get(ctx, "default:cart")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDynamoStore_PropagatesTransportErrors(t *testing.T) {
	ctx := context.Background()
	fake := newFakeDynamo()
	fake.err = errors.New("connection refused")
	s := NewDynamoStore(fake, "custom")

	_, _, err := s.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, s.Set(ctx, "k", "v"))
	assert.Error(t, s.Remove(ctx, "k"))
}
