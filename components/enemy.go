package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Wave uint32 // index of the wave that spawned this enemy
}

var Enemy = donburi.NewComponentType[EnemyData]()
