package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client used by the collections.
type DynamoAPI interface {
	dynamodb.ScanAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// DynamoCollection stores one entity collection in a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// Items use the records' JSON field names, so a patch key is also the
// attribute name it updates.
type DynamoCollection[T entities.Record[T]] struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRemoteCollection[entities.Job] = (*DynamoCollection[entities.Job])(nil)

func NewDynamoCollection[T entities.Record[T]](ddb DynamoAPI, tableName string) *DynamoCollection[T] {
	return &DynamoCollection[T]{ddb: ddb, tableName: tableName}
}

func withJSONTags(o *attributevalue.EncoderOptions) { o.TagKey = jsonTagKey }

func withJSONTagsDecode(o *attributevalue.DecoderOptions) { o.TagKey = jsonTagKey }

// Select scans the whole table. Items are ordered by created_at, then id.
func (r *DynamoCollection[T]) Select(ctx context.Context) ([]T, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}

	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := stringAttr(items[i], "created_at"), stringAttr(items[j], "created_at")
		if ci != cj {
			return ci < cj
		}
		return stringAttr(items[i], "id") < stringAttr(items[j], "id")
	})

	out := make([]T, 0, len(items))
	if err := attributevalue.UnmarshalListOfMapsWithOptions(items, &out, withJSONTagsDecode); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert writes each record with a condition on a new id. A conditional
// failure against an item equal to rec is a replay of an acknowledged write
// and counts as success. Any other existing item is a conflict.
func (r *DynamoCollection[T]) Insert(ctx context.Context, records []T) ([]T, error) {
	for _, rec := range records {
		av, err := attributevalue.MarshalMapWithOptions(rec, withJSONTags)
		if err != nil {
			return nil, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) && r.isReplay(rec, cfe.Item) {
				continue
			}
			return nil, err
		}
	}
	return records, nil
}

func (r *DynamoCollection[T]) isReplay(rec T, stored map[string]types.AttributeValue) bool {
	if len(stored) == 0 {
		return false
	}
	var existing T
	if err := attributevalue.UnmarshalMapWithOptions(stored, &existing, withJSONTagsDecode); err != nil {
		return false
	}
	return sameDocument(rec, existing)
}

func (r *DynamoCollection[T]) Update(ctx context.Context, id string, patch entities.Patch) error {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string, error) {
		return buildUpdateExpression(patch)
	})
}

func (r *DynamoCollection[T]) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *DynamoCollection[T]) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) error {
	updateExpr, values, names, err := build()
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return recordNotFound(r.tableName, id)
		}
		return err
	}
	return nil
}

// buildUpdateExpression turns a patch into SET/REMOVE clauses. Keys are
// sorted so the same patch always produces the same expression; nil values
// remove the attribute.
func buildUpdateExpression(patch entities.Patch) (string, map[string]types.AttributeValue, map[string]string, error) {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		if k == "id" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", nil, nil, entities.ErrEmptyPatch
	}
	sort.Strings(keys)

	var sets, removes []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	for i, k := range keys {
		name := fmt.Sprintf("#f%d", i)
		names[name] = k
		if patch[k] == nil {
			removes = append(removes, name)
			continue
		}
		av, err := attributevalue.MarshalWithOptions(patch[k], withJSONTags)
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal %s: %w", k, err)
		}
		value := fmt.Sprintf(":v%d", i)
		values[value] = av
		sets = append(sets, name+" = "+value)
	}

	var clauses []string
	if len(sets) > 0 {
		clauses = append(clauses, "SET "+strings.Join(sets, ", "))
	}
	if len(removes) > 0 {
		clauses = append(clauses, "REMOVE "+strings.Join(removes, ", "))
	}
	if len(values) == 0 {
		values = nil
	}
	return strings.Join(clauses, " "), values, names, nil
}

func stringAttr(item map[string]types.AttributeValue, key string) string {
	if s, ok := item[key].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}
