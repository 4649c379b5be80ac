package dto

type BackupResponse struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Lists    int    `json:"lists"`
}
