package repository

import (
	"context"
	"time"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const boardItemID = "board"

type columnItem struct {
	ID       string `dynamodbav:"id"`
	Title    string `dynamodbav:"title"`
	Color    string `dynamodbav:"color"`
	Subtitle string `dynamodbav:"subtitle,omitempty"`
}

type boardItem struct {
	ID        string       `dynamodbav:"id"`
	Columns   []columnItem `dynamodbav:"columns"`
	UpdatedAt string       `dynamodbav:"updated_at"`
}

// ColumnDynamoRepository keeps the ordered column list as a single item so a
// reorder is one atomic write.
//
// Table requirements:
//   - PK: id (string)
type ColumnDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IWorkflowColumnRepository = (*ColumnDynamoRepository)(nil)

func NewColumnDynamoRepository(ddb DynamoDBAPI, tableName string) *ColumnDynamoRepository {
	return &ColumnDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *ColumnDynamoRepository) List(ctx context.Context) ([]entities.WorkflowColumn, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(boardItemID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it boardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	cols := make([]entities.WorkflowColumn, 0, len(it.Columns))
	for _, c := range it.Columns {
		cols = append(cols, entities.WorkflowColumn{ID: c.ID, Title: c.Title, Color: c.Color, Subtitle: c.Subtitle})
	}
	return cols, nil
}

func (r *ColumnDynamoRepository) ReplaceAll(ctx context.Context, cols []entities.WorkflowColumn) error {
	it := boardItem{
		ID:        boardItemID,
		Columns:   make([]columnItem, 0, len(cols)),
		UpdatedAt: formatTime(r.now()),
	}
	for _, c := range cols {
		it.Columns = append(it.Columns, columnItem{ID: c.ID, Title: c.Title, Color: c.Color, Subtitle: c.Subtitle})
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
