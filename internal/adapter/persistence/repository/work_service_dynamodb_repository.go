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

const defaultWorkServicesTableName = "work_services"

type workServiceItem struct {
	ID            string `dynamodbav:"id"`
	Description   string `dynamodbav:"description"`
	StandardPrice string `dynamodbav:"standard_price"`
}

// WorkServiceDynamoRepository persists WorkService entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WorkServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkServiceRepository = (*WorkServiceDynamoRepository)(nil)

func NewWorkServiceDynamoRepository(ddb *dynamodb.Client) *WorkServiceDynamoRepository {
	return &WorkServiceDynamoRepository{
		ddb:       ddb,
		tableName: tableName("WORK_SERVICES_TABLE", defaultWorkServicesTableName),
	}
}

func (r *WorkServiceDynamoRepository) Create(ctx context.Context, w entities.WorkService) (entities.WorkService, error) {
	av, err := attributevalue.MarshalMap(toWorkServiceItem(w))
	if err != nil {
		return entities.WorkService{}, err
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
		return entities.WorkService{}, err
	}
	return w, nil
}

func (r *WorkServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkService{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkService{}, nil
	}

	var it workServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkService{}, err
	}
	return fromWorkServiceItem(it), nil
}

func (r *WorkServiceDynamoRepository) List(ctx context.Context) ([]entities.WorkService, error) {
	services := []entities.WorkService{}
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
			var it workServiceItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			services = append(services, fromWorkServiceItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return services, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *WorkServiceDynamoRepository) Update(ctx context.Context, w entities.WorkService) (entities.WorkService, error) {
	av, err := attributevalue.MarshalMap(toWorkServiceItem(w))
	if err != nil {
		return entities.WorkService{}, err
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
			return entities.WorkService{}, nil
		}
		return entities.WorkService{}, err
	}
	return w, nil
}

func (r *WorkServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toWorkServiceItem(w entities.WorkService) workServiceItem {
	return workServiceItem{
		ID:            w.ID,
		Description:   w.Description,
		StandardPrice: floatToString(w.StandardPrice),
	}
}

func fromWorkServiceItem(it workServiceItem) entities.WorkService {
	price, _ := strconv.ParseFloat(it.StandardPrice, 64)
	return entities.WorkService{
		ID:            it.ID,
		Description:   it.Description,
		StandardPrice: price,
	}
}
