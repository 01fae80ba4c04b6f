package kvstore

import (
	"context"
	"gemstore/internal/usecase/interfaces"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultTableName = "storefront_kv"

// dynamoAPI is the slice of *dynamodb.Client the store uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoStore keeps each snapshot as one DynamoDB item.
//
// Table requirements:
//   - PK: key (string)
//
// PutItem is unconditional: the last writer wins.

type DynamoStore struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IKeyValueStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb dynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultTableName
	}
	return &DynamoStore{ddb: ddb, tableName: tableName, now: time.Now}
}

func (s *DynamoStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            itemKey(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func (s *DynamoStore) Set(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     value,
		UpdatedAt: s.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoStore) Remove(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       itemKey(key),
	})
	return err
}

func itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}
