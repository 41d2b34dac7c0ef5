package repository

import (
	"context"
	"encoding/json"
	"time"

	"dekora_studio/internal/domain/entities"
	"dekora_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricingConfigsTableName = "pricing_configs"

type pricingConfigItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	Config    string `dynamodbav:"config"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PricingConfigDynamoRepository persists per-tenant pricing configs.
//
// Table requirements:
//   - PK: tenant_id (string)
//
// The whole config is one JSON blob: the admin UI always reads and writes it
// as a unit, and a single-item write keeps updates atomic so a concurrent
// calculation never sees half a config.
type PricingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigDynamoRepository)(nil)

func NewPricingConfigDynamoRepository(ddb *dynamodb.Client) *PricingConfigDynamoRepository {
	return &PricingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICING_CONFIGS_TABLE", defaultPricingConfigsTableName),
	}
}

func (r *PricingConfigDynamoRepository) Get(ctx context.Context, tenantID string) (entities.PricingConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.PricingConfig{}, nil
	}

	var it pricingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PricingConfig{}, err
	}

	var cfg entities.PricingConfig
	if err := json.Unmarshal([]byte(it.Config), &cfg); err != nil {
		return entities.PricingConfig{}, err
	}
	cfg.TenantID = it.TenantID
	if ts, err := time.Parse(time.RFC3339Nano, it.UpdatedAt); err == nil {
		cfg.UpdatedAt = ts
	}
	return cfg, nil
}

func (r *PricingConfigDynamoRepository) Put(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	body, err := json.Marshal(cfg)
	if err != nil {
		return entities.PricingConfig{}, err
	}

	it := pricingConfigItem{
		TenantID:  cfg.TenantID,
		Config:    string(body),
		UpdatedAt: cfg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PricingConfig{}, err
	}

	// Unconditional put: configs are only ever overwritten, never deleted.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PricingConfig{}, err
	}
	return cfg, nil
}
