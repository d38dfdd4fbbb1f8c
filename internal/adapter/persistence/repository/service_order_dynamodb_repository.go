package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderLineItem struct {
	Description string `dynamodbav:"description"`
	LaborCost   string `dynamodbav:"labor_cost"`
	Quantity    string `dynamodbav:"quantity"`
}

type serviceOrderPartItem struct {
	PartID    string `dynamodbav:"part_id"`
	Quantity  string `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type serviceOrderItem struct {
	ID           string                 `dynamodbav:"id"`
	CustomerID   string                 `dynamodbav:"customer_id"`
	VehicleID    string                 `dynamodbav:"vehicle_id"`
	TechnicianID string                 `dynamodbav:"technician_id"`
	Description  string                 `dynamodbav:"description,omitempty"`
	Status       string                 `dynamodbav:"status"`
	CreatedAt    string                 `dynamodbav:"created_at"`
	CompletedAt  string                 `dynamodbav:"completed_at,omitempty"`
	TotalCost    string                 `dynamodbav:"total_cost"`
	ServiceItems []serviceOrderLineItem `dynamodbav:"service_items,omitempty"`
	Parts        []serviceOrderPartItem `dynamodbav:"parts,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole aggregate (header, labor lines, part lines) lives in one item;
// orders are small and always read whole.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: tableName("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders := []entities.ServiceOrder{}
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
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

// UpdateStatus rewrites only the status (and completed_at for completing
// transitions), leaving the rest of the aggregate untouched.
func (r *ServiceOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ServiceStatus, completedAt *time.Time) (entities.ServiceOrder, error) {
	updateExpr := "SET #status = :status"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{
		"#status": "status",
	}
	if completedAt != nil {
		updateExpr += ", #completed_at = :completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: completedAt.UTC().Format(time.RFC3339Nano)}
		names["#completed_at"] = "completed_at"
	}

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
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		VehicleID:    o.VehicleID,
		TechnicianID: o.TechnicianID,
		Description:  o.Description,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339Nano),
		TotalCost:    floatToString(o.TotalCost),
	}
	if o.CompletedAt != nil {
		it.CompletedAt = o.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, s := range o.ServiceItems {
		it.ServiceItems = append(it.ServiceItems, serviceOrderLineItem{
			Description: s.Description,
			LaborCost:   floatToString(s.LaborCost),
			Quantity:    strconv.Itoa(s.Quantity),
		})
	}
	for _, p := range o.Parts {
		it.Parts = append(it.Parts, serviceOrderPartItem{
			PartID:    p.PartID,
			Quantity:  strconv.Itoa(p.Quantity),
			UnitPrice: floatToString(p.UnitPrice),
		})
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	totalCost, _ := strconv.ParseFloat(it.TotalCost, 64)
	o := entities.ServiceOrder{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		VehicleID:    it.VehicleID,
		TechnicianID: it.TechnicianID,
		Description:  it.Description,
		Status:       entities.ServiceStatus(it.Status),
		CreatedAt:    createdAt,
		TotalCost:    totalCost,
	}
	if it.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			o.CompletedAt = &completedAt
		}
	}
	for _, s := range it.ServiceItems {
		laborCost, _ := strconv.ParseFloat(s.LaborCost, 64)
		quantity, _ := strconv.Atoi(s.Quantity)
		o.ServiceItems = append(o.ServiceItems, entities.ServiceItem{
			Description: s.Description,
			LaborCost:   laborCost,
			Quantity:    quantity,
		})
	}
	for _, p := range it.Parts {
		quantity, _ := strconv.Atoi(p.Quantity)
		unitPrice, _ := strconv.ParseFloat(p.UnitPrice, 64)
		o.Parts = append(o.Parts, entities.ServiceOrderPart{
			PartID:    p.PartID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}
	return o
}
