package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type documentItem struct {
	ID        string `dynamodbav:"id"`
	Doc       string `dynamodbav:"doc"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// documentTable stores whole records as a JSON document next to the key and
// timestamps. Orders, quotes and invoices carry nested line items, specs and
// history that are only ever read back as a unit.
//
// Table requirements:
//   - PK: id (string)
type documentTable[T any] struct {
	ddb       DynamoDBAPI
	tableName string
	id        func(T) string
	createdAt func(T) time.Time
	now       func() time.Time
}

func newDocumentTable[T any](ddb DynamoDBAPI, tableName string, id func(T) string, createdAt func(T) time.Time) *documentTable[T] {
	return &documentTable[T]{ddb: ddb, tableName: tableName, id: id, createdAt: createdAt, now: time.Now}
}

func (t *documentTable[T]) toItem(v T) (map[string]types.AttributeValue, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return attributevalue.MarshalMap(documentItem{
		ID:        t.id(v),
		Doc:       string(doc),
		CreatedAt: formatTime(t.createdAt(v)),
		UpdatedAt: formatTime(t.now()),
	})
}

func (t *documentTable[T]) fromItem(av map[string]types.AttributeValue) (T, error) {
	var v T
	var it documentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return v, err
	}
	if err := json.Unmarshal([]byte(it.Doc), &v); err != nil {
		return v, fmt.Errorf("decode %s/%s: %w", t.tableName, it.ID, err)
	}
	return v, nil
}

func (t *documentTable[T]) create(ctx context.Context, v T) error {
	av, err := t.toItem(v)
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.id(v))
	}
	return err
}

func (t *documentTable[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}
	return t.fromItem(out.Item)
}

// list scans the whole table and returns the records newest first.
func (t *documentTable[T]) list(ctx context.Context) ([]T, error) {
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(t.tableName),
		ConsistentRead: aws.Bool(true),
	})

	items := []T{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			v, err := t.fromItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return t.createdAt(items[i]).After(t.createdAt(items[j]))
	})
	return items, nil
}

// update overwrites an existing record. A missing record yields (false, nil).
func (t *documentTable[T]) update(ctx context.Context, v T) (bool, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	_, err = t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(t.tableName),
		Key:                 idKey(t.id(v)),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #doc = :doc, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":doc":        &types.AttributeValueMemberS{Value: string(doc)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(t.now())},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#doc": "doc", "#updated_at": "updated_at"},
			map[string]string{"#id": "id"},
		),
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (t *documentTable[T]) delete(ctx context.Context, id string) error {
	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.tableName),
		Key:       idKey(id),
	})
	return err
}
