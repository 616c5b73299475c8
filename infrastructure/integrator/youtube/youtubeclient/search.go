package youtubeclient

import (
	"context"
	"net/url"
	"strconv"

	youtubedomain "github.com/vfg2006/funnel-dashboard-api/infrastructure/integrator/youtube/domain"
)

// SearchChannelVideos lista os vídeos mais recentes do canal
func (c *YouTubeClient) SearchChannelVideos(ctx context.Context, channelID string, maxResults int) (*youtubedomain.SearchListResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "date")
	params.Set("type", "video")

	var resp youtubedomain.SearchListResponse
	if err := c.get(ctx, "search", params, SearchCost, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
