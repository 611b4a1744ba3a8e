package models

import "encoding/json"

type User struct {
	ID      ID     `json:"user_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Status  bool   `json:"status"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var w struct {
		UserID  ID     `json:"user_id"`
		AltID   ID     `json:"id"`
		MongoID ID     `json:"_id"`
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Status  *bool  `json:"status"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	u.ID = FirstID(w.UserID, w.AltID, w.MongoID)
	u.Name = w.Name
	u.Phone = w.Phone
	u.Address = w.Address
	u.Status = activeByDefault(w.Status)
	return nil
}
