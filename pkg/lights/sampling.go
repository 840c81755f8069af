package lights

import "math/rand"

// ChooseAreaLight picks one area light uniformly at random
func ChooseAreaLight(random *rand.Rand, areaLights []AreaLight) (AreaLight, bool) {
	if len(areaLights) == 0 {
		return nil, false
	}
	return areaLights[random.Intn(len(areaLights))], true
}
