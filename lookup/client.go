package lookup

import (
	"context"
	"fmt"

	"ip-geo-lookup/logger"
	"ip-geo-lookup/models"
	"ip-geo-lookup/utils"

	"github.com/go-resty/resty/v2"
)

// maxErrorBodyLog bounds how much of a failed response body is kept in the error
const maxErrorBodyLog = 256

type lookupRequest struct {
	IP string `json:"ip"`
}

// Client posts addresses to the lookup service. It never retries; a failed
// lookup is resubmitted by the user.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient creates a client for cfg.APIBaseURL. cfg should already be validated.
func NewClient(cfg *models.Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("lookup")

	httpClient := resty.New().
		SetBaseURL(cfg.APIBaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: log})

	return &Client{http: httpClient, log: log}
}

// Lookup sends {"ip": ip} to the lookup endpoint. Any failure is returned as
// a *models.TransportError.
func (c *Client) Lookup(ctx context.Context, ip string) (*models.LookupResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(lookupRequest{IP: ip}).
		Post(models.LookupPath)
	if err != nil {
		return nil, &models.TransportError{Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &models.TransportError{
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("response body: %q", utils.TruncateString(string(resp.Body()), maxErrorBodyLog)),
		}
	}

	result, err := models.ParseLookupResult(resp.Body())
	if err != nil {
		return nil, &models.TransportError{StatusCode: resp.StatusCode(), Err: err}
	}

	c.log.WithIP(ip).Debug().
		Int("status", resp.StatusCode()).
		Int("fields", result.Len()).
		Dur("duration", resp.Time()).
		Msg("Lookup response decoded")

	return result, nil
}

// restyLogger routes resty's internal messages into zerolog
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
