package dto

type VideoItem struct {
	VideoID      string `json:"videoId"      example:"dQw4w9WgXcQ"`
	Title        string `json:"title"        example:"Never Gonna Give You Up"`
	ChannelTitle string `json:"channelTitle" example:"Rick Astley"`
	Thumbnail    string `json:"thumbnail"    example:"https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg"`
	URL          string `json:"url"          example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

type VideoSearchResp struct {
	Items []VideoItem `json:"items"`
}
