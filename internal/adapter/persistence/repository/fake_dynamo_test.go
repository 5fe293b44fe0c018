package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI. Scan and Query return pages of
// pageSize items so the paginators are exercised.
type fakeDynamo struct {
	tables   map[string]map[string]map[string]types.AttributeValue
	pageSize int
	fail     error
	scans    int
	queries  []*dynamodb.QueryInput
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func attrString(av types.AttributeValue) string {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	t := f.table(aws.ToString(in.TableName))
	id := attrString(in.Item["id"])
	_, exists := t[id]
	cond := aws.ToString(in.ConditionExpression)
	switch {
	case strings.HasPrefix(cond, "attribute_not_exists") && exists,
		strings.HasPrefix(cond, "attribute_exists") && !exists:
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("conditional request failed")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[attrString(in.Key["id"])]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	t := f.table(aws.ToString(in.TableName))
	id := attrString(in.Key["id"])
	old := t[id]
	delete(t, id)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.scans++
	match := func(map[string]types.AttributeValue) bool { return true }
	if want, ok := in.ExpressionAttributeValues[":name"]; ok {
		match = func(it map[string]types.AttributeValue) bool { return attrString(it["name"]) == attrString(want) }
	}
	items, last := f.page(aws.ToString(in.TableName), in.ExclusiveStartKey, match)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.queries = append(f.queries, in)
	want := attrString(in.ExpressionAttributeValues[":uid"])
	items, last := f.page(aws.ToString(in.TableName), in.ExclusiveStartKey, func(it map[string]types.AttributeValue) bool {
		return attrString(it["user_id"]) == want
	})
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) page(
	table string,
	start map[string]types.AttributeValue,
	match func(map[string]types.AttributeValue) bool,
) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	t := f.table(table)
	ids := make([]string, 0, len(t))
	for id, it := range t {
		if match(it) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	after := attrString(start["id"])
	var items []map[string]types.AttributeValue
	for i, id := range ids {
		if after != "" && id <= after {
			continue
		}
		items = append(items, t[id])
		if len(items) == f.pageSize && i < len(ids)-1 {
			return items, idKey(id)
		}
	}
	return items, nil
}
