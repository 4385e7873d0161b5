package components

import "github.com/yohamta/donburi"

// ContactData records whether the player touched the boulder on the last step.
type ContactData struct {
	Touching bool
}

var Contact = donburi.NewComponentType[ContactData]()
