package repository

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCitiesTableName    = "cities"
	defaultMaterialsTableName = "materials"
)

type cityItem struct {
	ID               string  `dynamodbav:"id"`
	Name             string  `dynamodbav:"name"`
	Code             string  `dynamodbav:"code"`
	LaborRatePerArea float64 `dynamodbav:"labor_rate_per_sqft"`
	MaterialBaseRate float64 `dynamodbav:"material_base_rate"`
	EquipmentRate    float64 `dynamodbav:"equipment_rate"`
}

type materialItem struct {
	ID           string  `dynamodbav:"id"`
	Name         string  `dynamodbav:"name"`
	Category     string  `dynamodbav:"category"`
	Unit         string  `dynamodbav:"unit"`
	StandardRate float64 `dynamodbav:"standard_rate"`
	PremiumRate  float64 `dynamodbav:"premium_rate"`
	LuxuryRate   float64 `dynamodbav:"luxury_rate"`
}

// CityDynamoRepository persists city rates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table holds a handful of rows, so lookups by name scan with a filter.
type CityDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICityRepository = (*CityDynamoRepository)(nil)

func NewCityDynamoRepository(ddb DynamoAPI, tableName string) *CityDynamoRepository {
	return &CityDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultCitiesTableName)}
}

func (r *CityDynamoRepository) List(ctx context.Context) ([]entities.CityRate, error) {
	items, err := scanAll[cityItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.CityRate, 0, len(items))
	for _, it := range items {
		out = append(out, entities.CityRate(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CityDynamoRepository) GetByID(ctx context.Context, id string) (entities.CityRate, error) {
	it, ok, err := getItem[cityItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.CityRate{}, err
	}
	return entities.CityRate(it), nil
}

func (r *CityDynamoRepository) GetByName(ctx context.Context, name string) (entities.CityRate, error) {
	items, err := scanAll[cityItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#name = :name"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: name},
		},
	})
	if err != nil {
		return entities.CityRate{}, err
	}
	if len(items) == 0 {
		return entities.CityRate{}, nil
	}
	return entities.CityRate(items[0]), nil
}

func (r *CityDynamoRepository) Create(ctx context.Context, c entities.CityRate) (entities.CityRate, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, cityItem(c), "attribute_not_exists(#id)")
	if err != nil {
		return entities.CityRate{}, err
	}
	if !ok {
		return entities.CityRate{}, ErrDuplicateID
	}
	return c, nil
}

func (r *CityDynamoRepository) Update(ctx context.Context, c entities.CityRate) (entities.CityRate, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, cityItem(c), "attribute_exists(#id)")
	if err != nil || !ok {
		return entities.CityRate{}, err
	}
	return c, nil
}

func (r *CityDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

// MaterialDynamoRepository persists material rates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type MaterialDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb DynamoAPI, tableName string) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultMaterialsTableName)}
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.MaterialRate, error) {
	items, err := scanAll[materialItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.MaterialRate, 0, len(items))
	for _, it := range items {
		out = append(out, entities.MaterialRate(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaterialRate, error) {
	it, ok, err := getItem[materialItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.MaterialRate{}, err
	}
	return entities.MaterialRate(it), nil
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.MaterialRate) (entities.MaterialRate, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, materialItem(m), "attribute_not_exists(#id)")
	if err != nil {
		return entities.MaterialRate{}, err
	}
	if !ok {
		return entities.MaterialRate{}, ErrDuplicateID
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.MaterialRate) (entities.MaterialRate, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, materialItem(m), "attribute_exists(#id)")
	if err != nil || !ok {
		return entities.MaterialRate{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}
