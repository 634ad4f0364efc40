package gateway

import (
	"context"
	"net/http"
	"net/url"

	httpclient "github.com/redtestlab/portal/internal/pkg/http"
	"github.com/redtestlab/portal/internal/pkg/models"
	"github.com/redtestlab/portal/services/site"
)

const (
	pathMetaTags  = "/metatags"
	pathSendEmail = "/email/send"
)

// HTTPGateway calls the site endpoints of the lab API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewSiteGW creates the site gateway
func NewSiteGW(client *httpclient.Client) site.SiteGW {
	return &HTTPGateway{client: client}
}

// ListMetaTags fetches every page's tags, anonymously when public is set
func (g *HTTPGateway) ListMetaTags(ctx context.Context, public bool) ([]*models.MetaTag, error) {
	var tags []*models.MetaTag
	err := g.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   pathMetaTags,
		Public: public,
	}, &tags)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (g *HTTPGateway) CreateMetaTag(ctx context.Context, tag *models.MetaTag) (*models.MetaTag, error) {
	var created models.MetaTag
	if err := g.client.Post(ctx, pathMetaTags, tag, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *HTTPGateway) UpdateMetaTag(ctx context.Context, id string, tag *models.MetaTag) (*models.MetaTag, error) {
	var updated models.MetaTag
	if err := g.client.Put(ctx, pathMetaTags+"/"+url.PathEscape(id), tag, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *HTTPGateway) DeleteMetaTag(ctx context.Context, id string) error {
	return g.client.Delete(ctx, pathMetaTags+"/"+url.PathEscape(id))
}

// SendEmail hands a composed message to the lab API mailer
func (g *HTTPGateway) SendEmail(ctx context.Context, msg *models.EmailMessage) error {
	return g.client.Post(ctx, pathSendEmail, msg, nil)
}
