package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"printdesk/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table set understanding the expressions the
// repositories send.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name *string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[aws.ToString(name)]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[aws.ToString(name)] = t
	}
	return t
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(in.TableName)
	id := stringAttr(in.Item["id"])
	if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		if _, ok := t[id]; ok {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.table(in.TableName)[stringAttr(in.Key["id"])]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t := f.table(in.TableName)
	id := stringAttr(in.Key["id"])
	item, ok := t[id]
	if !ok {
		if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_exists") {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
		item = map[string]types.AttributeValue{"id": in.Key["id"]}
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assign := range strings.Split(expr, ",") {
		parts := strings.SplitN(assign, "=", 2)
		name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		item[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	t[id] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.table(in.TableName), stringAttr(in.Key["id"]))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := &dynamodb.ScanOutput{}
	for _, item := range f.table(in.TableName) {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), "=", 2)
	attr := strings.TrimSpace(parts[0])
	want := stringAttr(in.ExpressionAttributeValues[strings.TrimSpace(parts[1])])

	out := &dynamodb.QueryOutput{}
	for _, item := range f.table(in.TableName) {
		if stringAttr(item[attr]) == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

func TestOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("create, get and list newest first", func(t *testing.T) {
		repo := NewOrderDynamoRepository(newFakeDynamo(), "orders")
		for i, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
			o := entities.Order{ID: id, Customer: "Lee", Total: 12.5, CreatedAt: day.Add(time.Duration(i) * time.Hour)}
			if _, err := repo.Create(ctx, o); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		got, err := repo.GetByID(ctx, "ORD-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Customer != "Lee" || got.Total != 12.5 || !got.CreatedAt.Equal(day.Add(time.Hour)) {
			t.Fatalf("unexpected order: %+v", got)
		}

		orders, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 3 || orders[0].ID != "ORD-3" || orders[2].ID != "ORD-1" {
			t.Fatalf("expected newest first, got %+v", orders)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := NewOrderDynamoRepository(newFakeDynamo(), "orders")
		_, _ = repo.Create(ctx, entities.Order{ID: "ORD-1"})
		if _, err := repo.Create(ctx, entities.Order{ID: "ORD-1"}); !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("update existing and missing", func(t *testing.T) {
		repo := NewOrderDynamoRepository(newFakeDynamo(), "orders")
		_, _ = repo.Create(ctx, entities.Order{ID: "ORD-1", Customer: "Lee"})

		if _, err := repo.Update(ctx, entities.Order{ID: "ORD-1", Customer: "Tan"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetByID(ctx, "ORD-1")
		if got.Customer != "Tan" {
			t.Fatalf("expected updated customer, got %q", got.Customer)
		}

		missing, err := repo.Update(ctx, entities.Order{ID: "ORD-9"})
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", missing, err)
		}
	})

	t.Run("delete and storage failure", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewOrderDynamoRepository(ddb, "orders")
		_, _ = repo.Create(ctx, entities.Order{ID: "ORD-1"})
		if err := repo.Delete(ctx, "ORD-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := repo.GetByID(ctx, "ORD-1"); got.ID != "" {
			t.Fatalf("expected order to be gone")
		}

		ddb.err = errors.New("throttled")
		if _, err := repo.List(ctx); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestColumnDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewColumnDynamoRepository(newFakeDynamo(), "workflow_columns")

	cols, err := repo.List(ctx)
	if err != nil || cols != nil {
		t.Fatalf("expected nil board before first write, got %+v err=%v", cols, err)
	}

	want := []entities.WorkflowColumn{
		{ID: "col-1", Title: "New Order", Color: "bg-blue-500"},
		{ID: "col-8", Title: "Issue / On Hold", Color: "bg-red-500", Subtitle: "blocked"},
	}
	if err := repo.ReplaceAll(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cols, _ = repo.List(ctx)
	if len(cols) != 2 || cols[0] != want[0] || cols[1] != want[1] {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}

func TestCouponDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCouponDynamoRepository(newFakeDynamo(), "coupons")

	_, _ = repo.Save(ctx, entities.Coupon{ID: "CPN-900", Code: "A", Type: entities.CouponFixed, Value: 5})
	_, _ = repo.Save(ctx, entities.Coupon{ID: "CPN-1000", Code: "B", Type: entities.CouponPercentage, Value: 12.5, MinSpend: 100})
	_, _ = repo.Save(ctx, entities.Coupon{ID: "CPN-900", Code: "A", Type: entities.CouponFixed, Value: 5, UsageCount: 2})

	got, err := repo.GetByID(ctx, "CPN-1000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != 12.5 || got.MinSpend != 100 || got.Type != entities.CouponPercentage {
		t.Fatalf("unexpected coupon: %+v", got)
	}

	coupons, _ := repo.List(ctx)
	if len(coupons) != 2 || coupons[0].ID != "CPN-1000" || coupons[1].UsageCount != 2 {
		t.Fatalf("unexpected coupons: %+v", coupons)
	}

	_ = repo.Delete(ctx, "CPN-900")
	if got, _ := repo.GetByID(ctx, "CPN-900"); got.ID != "" {
		t.Fatalf("expected coupon to be gone")
	}
}

func TestBundleDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBundleDynamoRepository(newFakeDynamo(), "bundles")
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	_, _ = repo.Create(ctx, entities.Bundle{ID: "BND-1", Slug: "old", CreatedAt: base, Status: entities.BundleDraft})
	_, _ = repo.Create(ctx, entities.Bundle{
		ID: "BND-2", Slug: "new", CreatedAt: base.Add(time.Hour), Status: entities.BundleActive, IsFeatured: true,
		Items: []entities.BundleItem{{ProductID: "PROD-002", Quantity: 500, Options: "A5"}},
	})
	if _, err := repo.Create(ctx, entities.Bundle{ID: "BND-1"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	got, err := repo.GetByID(ctx, "BND-2")
	if err != nil || !got.IsFeatured || len(got.Items) != 1 || got.Items[0].Options != "A5" {
		t.Fatalf("unexpected bundle: %+v err=%v", got, err)
	}

	bundles, _ := repo.List(ctx)
	if len(bundles) != 2 || bundles[0].ID != "BND-2" {
		t.Fatalf("expected newest first, got %+v", bundles)
	}

	_ = repo.Delete(ctx, "BND-1")
	if got, _ := repo.GetByID(ctx, "BND-1"); got.ID != "" {
		t.Fatalf("expected bundle to be gone")
	}
}

func TestInvoicePaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoicePaymentDynamoRepository(newFakeDynamo(), "invoice_payments")
	date := time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

	p := entities.InvoicePayment{
		ID:                 "pay-1",
		InvoiceID:          "INV-1",
		Amount:             99.9,
		Date:               date,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":1}`),
	}
	if _, err := repo.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, p); err == nil {
		t.Fatalf("expected conditional check failure")
	}
	_, _ = repo.Create(ctx, entities.InvoicePayment{ID: "pay-2", InvoiceID: "INV-2", Date: date})

	got, err := repo.GetByID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Amount != 99.9 || !got.Date.Equal(date) || string(got.ProviderPayloadRaw) != `{"id":1}` {
		t.Fatalf("unexpected payment: %+v", got)
	}

	list, err := repo.ListByInvoiceID(ctx, "INV-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID != "pay-1" {
		t.Fatalf("unexpected payments: %+v", list)
	}
}
