package repository

import (
	"context"
	"errors"
	"strconv"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPartsTableName = "parts"

type partItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Code      string `dynamodbav:"code"`
	UnitPrice string `dynamodbav:"unit_price"`
	Stock     string `dynamodbav:"stock"`
}

// PartDynamoRepository persists Part entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Prices are stored as strings to avoid float drift in the item encoding.

type PartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPartRepository = (*PartDynamoRepository)(nil)

func NewPartDynamoRepository(ddb *dynamodb.Client) *PartDynamoRepository {
	return &PartDynamoRepository{
		ddb:       ddb,
		tableName: tableName("PARTS_TABLE", defaultPartsTableName),
	}
}

func (r *PartDynamoRepository) Create(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
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
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) GetByID(ctx context.Context, id string) (entities.Part, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Part{}, err
	}
	if len(out.Item) == 0 {
		return entities.Part{}, nil
	}

	var it partItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Part{}, err
	}
	return fromPartItem(it), nil
}

func (r *PartDynamoRepository) List(ctx context.Context) ([]entities.Part, error) {
	parts := []entities.Part{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it partItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			parts = append(parts, fromPartItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return parts, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PartDynamoRepository) Update(ctx context.Context, p entities.Part) (entities.Part, error) {
	av, err := attributevalue.MarshalMap(toPartItem(p))
	if err != nil {
		return entities.Part{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Part{}, nil
		}
		return entities.Part{}, err
	}
	return p, nil
}

func (r *PartDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPartItem(p entities.Part) partItem {
	return partItem{
		ID:        p.ID,
		Name:      p.Name,
		Code:      p.Code,
		UnitPrice: floatToString(p.UnitPrice),
		Stock:     strconv.Itoa(p.Stock),
	}
}

func fromPartItem(it partItem) entities.Part {
	price, _ := strconv.ParseFloat(it.UnitPrice, 64)
	stock, _ := strconv.Atoi(it.Stock)
	return entities.Part{
		ID:        it.ID,
		Name:      it.Name,
		Code:      it.Code,
		UnitPrice: price,
		Stock:     stock,
	}
}
