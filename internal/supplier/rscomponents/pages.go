package rscomponents

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one row of a search result listing.
type Record struct {
	ID                     string `json:"id"`
	Category               string `json:"category"`
	UOMMessage             string `json:"uomMessage"`
	ManufacturerPartNumber string `json:"manufacturerPartNumber"`
}

// Article is the product model of a product page.
type Article struct {
	ID                  string              `json:"id"`
	ProductURL          string              `json:"productUrl"`
	PriceBreaks         []PriceBreak        `json:"priceBreaks"`
	ProductAvailability ProductAvailability `json:"productAvailability"`
}

// PriceBreak is one RS price tier.
type PriceBreak struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ProductAvailability holds the stock figure shown on the product page.
// RS serializes it as a string or a number depending on the page.
type ProductAvailability struct {
	ProductPageStockVolume jsonNumberish `json:"productPageStockVolume"`
}

type articleResult struct {
	Data struct {
		Article *Article `json:"article"`
	} `json:"data"`
}

type searchPage struct {
	Props struct {
		PageProps struct {
			ArticleResult           *articleResult `json:"articleResult"`
			SearchFilterResultsData struct {
				GroupBySearchResults struct {
					ResultsList struct {
						Records []Record `json:"records"`
					} `json:"resultsList"`
				} `json:"groupBySearchResults"`
			} `json:"searchFilterResultsData"`
		} `json:"pageProps"`
	} `json:"props"`
}

type productPage struct {
	Props struct {
		PageProps struct {
			ArticleResult *articleResult `json:"articleResult"`
		} `json:"pageProps"`
	} `json:"props"`
}

// Search returns the search listing for term. When RS redirects an exact
// code straight to its product page, the article is returned instead.
func (c *Client) Search(ctx context.Context, term string) ([]Record, *Article, error) {
	var page searchPage
	u := fmt.Sprintf("%s/web/c/?%s", c.baseURL, url.Values{"searchTerm": {term}}.Encode())
	if err := c.nextData(ctx, u, &page); err != nil {
		return nil, nil, err
	}
	pp := page.Props.PageProps
	if pp.ArticleResult != nil && pp.ArticleResult.Data.Article != nil {
		return nil, pp.ArticleResult.Data.Article, nil
	}
	return pp.SearchFilterResultsData.GroupBySearchResults.ResultsList.Records, nil, nil
}

// Product fetches the product page of a search record.
func (c *Client) Product(ctx context.Context, r Record) (*Article, error) {
	var page productPage
	u := fmt.Sprintf("%s/web/p/%s/%s", c.baseURL, url.PathEscape(strings.ToLower(r.Category)), url.PathEscape(r.ID))
	if err := c.nextData(ctx, u, &page); err != nil {
		return nil, err
	}
	ar := page.Props.PageProps.ArticleResult
	if ar == nil || ar.Data.Article == nil {
		return nil, fmt.Errorf("%s: no article in page data", u)
	}
	return ar.Data.Article, nil
}
