package icons

const perkImageBase = "https://ddragon.canisback.com/img/perk-images/Styles/"

// runeCoreFallback covers the keystones seen in ARAM data.
var runeCoreFallback = map[string]string{
	"여진":     perkImageBase + "Resolve/VeteranAftershock/VeteranAftershock.png",
	"수호자":    perkImageBase + "Resolve/Guardian/Guardian.png",
	"정복자":    perkImageBase + "Precision/Conqueror/Conqueror.png",
	"치명적 속도": perkImageBase + "Precision/LethalTempo/LethalTempoTemp.png",
	"집중 공격":  perkImageBase + "Precision/PressTheAttack/PressTheAttack.png",
	"기민한 발놀림": perkImageBase + "Precision/FleetFootwork/FleetFootwork.png",
	"감전":     perkImageBase + "Domination/Electrocute/Electrocute.png",
	"어둠의 수확": perkImageBase + "Domination/DarkHarvest/DarkHarvest.png",
	"콩콩이 소환": perkImageBase + "Sorcery/SummonAery/SummonAery.png",
	"신비로운 유성": perkImageBase + "Sorcery/ArcaneComet/ArcaneComet.png",
}

// runeSubtreeFallback covers the five rune trees.
var runeSubtreeFallback = map[string]string{
	"정밀": perkImageBase + "7201_Precision.png",
	"지배": perkImageBase + "7200_Domination.png",
	"마법": perkImageBase + "7202_Sorcery.png",
	"결의": perkImageBase + "7204_Resolve.png",
	"영감": perkImageBase + "7203_Whimsy.png",
}
