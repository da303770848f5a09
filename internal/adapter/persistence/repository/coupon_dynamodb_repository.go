package repository

import (
	"context"
	"sort"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type couponItem struct {
	ID         string `dynamodbav:"id"`
	Code       string `dynamodbav:"code"`
	Type       string `dynamodbav:"type"`
	Value      string `dynamodbav:"value"`
	MinSpend   string `dynamodbav:"min_spend"`
	Status     string `dynamodbav:"status"`
	UsageCount int    `dynamodbav:"usage_count"`
}

// CouponDynamoRepository persists coupons in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CouponDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb DynamoDBAPI, tableName string) *CouponDynamoRepository {
	return &CouponDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CouponDynamoRepository) Save(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) GetByID(ctx context.Context, id string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Coupon{}, err
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

// List returns every coupon, newest id first. Generated ids embed the
// creation time in milliseconds.
func (r *CouponDynamoRepository) List(ctx context.Context) ([]entities.Coupon, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	coupons := []entities.Coupon{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []couponItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			coupons = append(coupons, fromCouponItem(it))
		}
	}
	sort.SliceStable(coupons, func(i, j int) bool {
		a, b := coupons[i].ID, coupons[j].ID
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a > b
	})
	return coupons, nil
}

func (r *CouponDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{
		ID:         c.ID,
		Code:       c.Code,
		Type:       string(c.Type),
		Value:      floatToString(c.Value),
		MinSpend:   floatToString(c.MinSpend),
		Status:     string(c.Status),
		UsageCount: c.UsageCount,
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	return entities.Coupon{
		ID:         it.ID,
		Code:       it.Code,
		Type:       entities.CouponType(it.Type),
		Value:      stringToFloat(it.Value),
		MinSpend:   stringToFloat(it.MinSpend),
		Status:     entities.CouponStatus(it.Status),
		UsageCount: it.UsageCount,
	}
}
