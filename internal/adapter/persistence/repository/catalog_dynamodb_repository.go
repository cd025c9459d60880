package repository

import (
	"context"
	"strconv"

	"github.com/rabwill/pizza-api/internal/domain/entities"
	"github.com/rabwill/pizza-api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPizzasTableName   = "pizzas"
	defaultToppingsTableName = "toppings"
)

type pizzaItem struct {
	ID          string   `dynamodbav:"id"`
	Name        string   `dynamodbav:"name"`
	Description string   `dynamodbav:"description"`
	Price       string   `dynamodbav:"price"`
	ImageURL    string   `dynamodbav:"imageUrl"`
	Toppings    []string `dynamodbav:"toppings"`
}

type toppingItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	ImageURL    string `dynamodbav:"imageUrl"`
	Category    string `dynamodbav:"category"`
}

// CatalogDynamoRepository reads Pizza and Topping records from DynamoDB.
//
// Table requirements:
//   - pizzas:   PK id (string)
//   - toppings: PK id (string)
//
// The catalog is read-only at request time; SeedIfEmpty fills empty tables
// from the bundled dataset at startup.

type CatalogDynamoRepository struct {
	ddb           *dynamodb.Client
	pizzasTable   string
	toppingsTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:           ddb,
		pizzasTable:   getenvDefault("PIZZAS_TABLE", defaultPizzasTableName),
		toppingsTable: getenvDefault("TOPPINGS_TABLE", defaultToppingsTableName),
	}
}

func (r *CatalogDynamoRepository) GetPizzas(ctx context.Context) ([]entities.Pizza, error) {
	pizzas := []entities.Pizza{}
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.pizzasTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []pizzaItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			pizzas = append(pizzas, fromPizzaItem(it))
		}
	}
	return pizzas, nil
}

func (r *CatalogDynamoRepository) GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.pizzasTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Pizza{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pizza{}, nil
	}

	var it pizzaItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pizza{}, err
	}
	return fromPizzaItem(it), nil
}

func (r *CatalogDynamoRepository) GetToppings(ctx context.Context) ([]entities.Topping, error) {
	return r.scanToppings(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.toppingsTable),
	})
}

func (r *CatalogDynamoRepository) GetToppingsByCategory(ctx context.Context, category entities.ToppingCategory) ([]entities.Topping, error) {
	return r.scanToppings(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.toppingsTable),
		FilterExpression: aws.String("#category = :category"),
		ExpressionAttributeNames: map[string]string{
			"#category": "category",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: string(category)},
		},
	})
}

func (r *CatalogDynamoRepository) GetToppingByID(ctx context.Context, id string) (entities.Topping, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.toppingsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Topping{}, err
	}
	if len(out.Item) == 0 {
		return entities.Topping{}, nil
	}

	var it toppingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Topping{}, err
	}
	return fromToppingItem(it), nil
}

func (r *CatalogDynamoRepository) scanToppings(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Topping, error) {
	toppings := []entities.Topping{}
	paginator := dynamodb.NewScanPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []toppingItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			toppings = append(toppings, fromToppingItem(it))
		}
	}
	return toppings, nil
}

// SeedIfEmpty loads the bundled catalog into empty tables. Existing data is
// never touched.
func (r *CatalogDynamoRepository) SeedIfEmpty(ctx context.Context, pizzas []entities.Pizza, toppings []entities.Topping) error {
	empty, err := r.tableIsEmpty(ctx, r.pizzasTable)
	if err != nil {
		return err
	}
	if empty {
		for _, p := range pizzas {
			av, err := attributevalue.MarshalMap(toPizzaItem(p))
			if err != nil {
				return err
			}
			if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(r.pizzasTable),
				Item:      av,
			}); err != nil {
				return err
			}
		}
	}

	empty, err = r.tableIsEmpty(ctx, r.toppingsTable)
	if err != nil {
		return err
	}
	if empty {
		for _, t := range toppings {
			av, err := attributevalue.MarshalMap(toToppingItem(t))
			if err != nil {
				return err
			}
			if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
				TableName: aws.String(r.toppingsTable),
				Item:      av,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *CatalogDynamoRepository) tableIsEmpty(ctx context.Context, table string) (bool, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
		Select:    types.SelectCount,
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count == 0, nil
}

func toPizzaItem(p entities.Pizza) pizzaItem {
	return pizzaItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       floatToString(p.Price),
		ImageURL:    p.ImageURL,
		Toppings:    p.Toppings,
	}
}

func fromPizzaItem(it pizzaItem) entities.Pizza {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Pizza{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		ImageURL:    it.ImageURL,
		Toppings:    it.Toppings,
	}
}

func toToppingItem(t entities.Topping) toppingItem {
	return toppingItem{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       floatToString(t.Price),
		ImageURL:    t.ImageURL,
		Category:    string(t.Category),
	}
}

func fromToppingItem(it toppingItem) entities.Topping {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Topping{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		ImageURL:    it.ImageURL,
		Category:    entities.ToppingCategory(it.Category),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
