package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	tenantIndexName           = "tenant_id-index"
)

// estimateItem is the DynamoDB shape of an EstimateRecord. The nested
// selection and breakdown are stored as JSON blobs; DynamoDB never needs to
// query inside them.
type estimateItem struct {
	ID               string `dynamodbav:"id"`
	TenantID         string `dynamodbav:"tenant_id"`
	CustomerName     string `dynamodbav:"customer_name"`
	CustomerPhone    string `dynamodbav:"customer_phone"`
	CustomerEmail    string `dynamodbav:"customer_email"`
	CustomerCity     string `dynamodbav:"customer_city"`
	Configuration    string `dynamodbav:"configuration"`
	Breakdown        string `dynamodbav:"breakdown"`
	TotalAmount      string `dynamodbav:"total_amount"`
	Status           string `dynamodbav:"status"`
	AssignedTo       string `dynamodbav:"assigned_to"`
	AssignedToName   string `dynamodbav:"assigned_to_name"`
	AssignmentStatus string `dynamodbav:"assignment_status"`
	PDFURL           string `dynamodbav:"pdf_url"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists EstimateRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI tenant_id-index: tenant_id (string) for per-tenant listing
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.EstimateRecord) (entities.EstimateRecord, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EstimateRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRecord{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it)
}

func (r *EstimateDynamoRepository) ListByTenant(ctx context.Context, tenantID string) ([]entities.EstimateRecord, error) {
	var records []entities.EstimateRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(tenantIndexName),
			KeyConditionExpression: aws.String("#tenant_id = :tenant_id"),
			ExpressionAttributeNames: map[string]string{
				"#tenant_id": "tenant_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			rec, err := fromEstimateItem(it)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return records, nil
}

func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.EstimateStatus) (entities.EstimateRecord, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateAssignment(ctx context.Context, id, assignedTo, assignedToName string, status entities.AssignmentStatus) (entities.EstimateRecord, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #assigned_to = :assigned_to, #assigned_to_name = :assigned_to_name, #assignment_status = :assignment_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":assigned_to":       &types.AttributeValueMemberS{Value: assignedTo},
			":assigned_to_name":  &types.AttributeValueMemberS{Value: assignedToName},
			":assignment_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#assigned_to":       "assigned_to",
			"#assigned_to_name":  "assigned_to_name",
			"#assignment_status": "assignment_status",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdateTotal(ctx context.Context, id string, newTotal float64) (entities.EstimateRecord, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total_amount = :total_amount, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total_amount": &types.AttributeValueMemberS{Value: floatToString(newTotal)},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total_amount": "total_amount",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) UpdatePDFURL(ctx context.Context, id, url string) (entities.EstimateRecord, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #pdf_url = :pdf_url, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pdf_url":    &types.AttributeValueMemberS{Value: url},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#pdf_url":    "pdf_url",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.EstimateRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateRecord{}, nil
		}
		return entities.EstimateRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateRecord{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.EstimateRecord) (estimateItem, error) {
	cfgJSON, err := json.Marshal(e.Configuration)
	if err != nil {
		return estimateItem{}, err
	}
	breakdownJSON, err := json.Marshal(e.Breakdown)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:               e.ID,
		TenantID:         e.TenantID,
		CustomerName:     e.Customer.Name,
		CustomerPhone:    e.Customer.Phone,
		CustomerEmail:    e.Customer.Email,
		CustomerCity:     e.Customer.City,
		Configuration:    string(cfgJSON),
		Breakdown:        string(breakdownJSON),
		TotalAmount:      floatToString(e.TotalAmount),
		Status:           string(e.Status),
		AssignedTo:       e.AssignedTo,
		AssignedToName:   e.AssignedToName,
		AssignmentStatus: string(e.AssignmentStatus),
		PDFURL:           e.PDFURL,
		CreatedAt:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.EstimateRecord, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)

	var sel entities.CustomerSelection
	if it.Configuration != "" {
		if err := json.Unmarshal([]byte(it.Configuration), &sel); err != nil {
			return entities.EstimateRecord{}, err
		}
	}
	var breakdown []entities.LineItem
	if it.Breakdown != "" {
		if err := json.Unmarshal([]byte(it.Breakdown), &breakdown); err != nil {
			return entities.EstimateRecord{}, err
		}
	}

	return entities.EstimateRecord{
		ID:       it.ID,
		TenantID: it.TenantID,
		Customer: entities.CustomerInfo{
			Name:  it.CustomerName,
			Phone: it.CustomerPhone,
			Email: it.CustomerEmail,
			City:  it.CustomerCity,
		},
		Configuration:    sel,
		TotalAmount:      total,
		Breakdown:        breakdown,
		Status:           entities.EstimateStatus(it.Status),
		AssignedTo:       it.AssignedTo,
		AssignedToName:   it.AssignedToName,
		AssignmentStatus: entities.AssignmentStatus(it.AssignmentStatus),
		PDFURL:           it.PDFURL,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
