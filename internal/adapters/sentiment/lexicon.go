package sentiment

// Valences follow the VADER convention: -4 (most negative) .. +4 (most positive).
var defaultLexicon = map[string]float64{
	"amazing": 2.8, "awesome": 3.1, "beautiful": 2.9, "best": 3.2, "brilliant": 2.8,
	"clean": 1.7, "comfortable": 1.5, "comfy": 1.8, "cozy": 1.9, "delightful": 2.9,
	"enjoy": 2.2, "enjoyed": 2.3, "excellent": 2.7, "fantastic": 2.6, "fine": 0.8,
	"friendly": 2.2, "fun": 2.3, "glad": 2.0, "good": 1.9, "gorgeous": 3.0,
	"great": 3.1, "happy": 2.7, "helpful": 1.6, "impressive": 2.3, "like": 1.5,
	"liked": 1.8, "love": 3.2, "loved": 2.9, "lovely": 2.8, "nice": 1.8,
	"ok": 1.2, "okay": 0.9, "outstanding": 3.0, "peaceful": 2.2, "perfect": 2.7,
	"pleasant": 2.3, "quiet": 0.8, "recommend": 1.5, "relaxing": 2.2, "spacious": 1.2,
	"spotless": 1.9, "stunning": 2.6, "sunny": 1.9, "superb": 3.1, "warm": 0.9,
	"welcoming": 2.0, "wonderful": 2.7, "worth": 0.9, "yay": 2.4,

	"angry": -2.3, "annoying": -1.7, "awful": -2.0, "bad": -2.5, "bland": -1.1,
	"broken": -1.4, "cold": -0.5, "cramped": -1.3, "dirty": -1.9, "disappointed": -1.9,
	"disappointing": -2.2, "disgusting": -2.9, "filthy": -2.4, "gross": -2.1, "hate": -2.7,
	"hated": -3.2, "horrible": -2.5, "leak": -0.9, "loud": -0.6, "mediocre": -1.0,
	"mess": -1.5, "moldy": -1.8, "nasty": -2.6, "noisy": -0.7, "overpriced": -1.5,
	"poor": -2.1, "problem": -1.7, "rude": -2.0, "sad": -2.1, "smelly": -1.5,
	"stained": -1.2, "terrible": -2.1, "ugly": -2.3, "uncomfortable": -1.6, "unfortunately": -1.5,
	"unhelpful": -1.8, "unpleasant": -2.1, "worse": -2.1, "worst": -3.1, "wrong": -2.1,
}

var negations = map[string]bool{
	"aint": true, "arent": true, "cannot": true, "cant": true, "couldnt": true,
	"didnt": true, "doesnt": true, "dont": true, "hardly": true, "isnt": true,
	"neither": true, "never": true, "no": true, "nobody": true, "none": true,
	"nope": true, "nor": true, "not": true, "nothing": true, "nowhere": true,
	"shouldnt": true, "wasnt": true, "werent": true, "without": true, "wont": true,
	"wouldnt": true,
}

const (
	boostIncr = 0.293
	boostDecr = -0.293
	capsIncr  = 0.733
	negScalar = -0.74
)

var boosters = map[string]float64{
	"absolutely": boostIncr, "completely": boostIncr, "especially": boostIncr,
	"exceptionally": boostIncr, "extremely": boostIncr, "highly": boostIncr,
	"incredibly": boostIncr, "really": boostIncr, "so": boostIncr,
	"super": boostIncr, "totally": boostIncr, "truly": boostIncr, "very": boostIncr,

	"barely": boostDecr, "kinda": boostDecr, "marginally": boostDecr,
	"partly": boostDecr, "slightly": boostDecr, "somewhat": boostDecr,
}
