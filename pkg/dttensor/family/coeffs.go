package family

// Matrix is a fixed linear projection from latent channels to RGB.
// Weights holds one RGB triple per latent channel; Bias is added to the
// weighted sum. The numbers are photometric calibration of each
// family's trained decoder: opaque lookup data, copied as given, never
// derived or rounded further.
type Matrix struct {
	Weights [][3]float32
	Bias    [3]float32
}

// Channels returns the latent channel count the matrix expects.
func (m *Matrix) Channels() int { return len(m.Weights) }

// Project maps one latent vector to an RGB triple in roughly [-1, 1].
// The caller is responsible for x having exactly Channels() entries.
func (m *Matrix) Project(x []float32) (r, g, b float32) {
	r, g, b = m.Bias[0], m.Bias[1], m.Bias[2]
	for i, w := range m.Weights {
		r += w[0] * x[i]
		g += w[1] * x[i]
		b += w[2] * x[i]
	}
	return r, g, b
}

// MatrixFor returns the projection matrix for a channel count. The
// model family only disambiguates 16-channel latents: Qwen shares the
// Wan 2.1 matrix, and anything unrecognized previews as Flux.
func MatrixFor(channels int, m Model) (*Matrix, bool) {
	switch channels {
	case 4:
		return &sdxlMatrix, true
	case 48:
		return &wan22Matrix, true
	case 16:
		switch m {
		case Qwen, Wan21:
			return &wan21Matrix, true
		case SD3:
			return &sd3Matrix, true
		case HunyuanVideo:
			return &hunyuanVideoMatrix, true
		default:
			// Flux, ZImage, Unknown
			return &fluxMatrix, true
		}
	}
	return nil, false
}

var fluxMatrix = Matrix{
	Weights: [][3]float32{
		{-0.0346, 0.0244, 0.0681},
		{0.0034, 0.0210, 0.0687},
		{0.0275, -0.0737, -0.0586},
		{-0.0174, 0.0698, 0.0540},
		{0.0745, 0.0682, 0.0717},
		{0.0440, 0.0749, 0.0181},
		{0.0534, 0.0540, 0.0489},
		{-0.0767, -0.0851, -0.0921},
		{0.0756, 0.0731, 0.0861},
		{-0.0578, -0.0674, -0.0553},
		{0.0067, 0.0308, 0.0259},
		{0.0559, 0.0085, 0.0075},
		{-0.1045, -0.0817, -0.0592},
		{-0.0245, 0.0134, 0.0461},
		{0.0281, 0.0156, 0.0221},
		{-0.0539, -0.0280, -0.0088},
	},
	Bias: [3]float32{-0.0329, -0.0718, -0.0851},
}

var sd3Matrix = Matrix{
	Weights: [][3]float32{
		{-0.0645, 0.0177, 0.1052},
		{0.0028, 0.0312, 0.0650},
		{0.1848, 0.0762, 0.0360},
		{0.0944, 0.0360, 0.0889},
		{0.0897, 0.0506, -0.0364},
		{-0.0020, 0.1203, 0.0284},
		{0.0855, 0.0118, 0.0283},
		{-0.0539, 0.0658, 0.1047},
		{-0.0057, 0.0116, 0.0700},
		{-0.0412, 0.0281, -0.0039},
		{0.1106, 0.1171, 0.1220},
		{-0.0248, 0.0682, -0.0481},
		{0.0815, 0.0846, 0.1207},
		{-0.0120, -0.0055, -0.0867},
		{-0.0749, -0.0634, -0.0456},
		{-0.1418, -0.1457, -0.1259},
	},
	Bias: [3]float32{0.2394, 0.2135, 0.1925},
}

var hunyuanVideoMatrix = Matrix{
	Weights: [][3]float32{
		{-0.0395, -0.0331, 0.0445},
		{0.0696, 0.0795, 0.0518},
		{0.0135, -0.0945, -0.0282},
		{0.0108, -0.0250, -0.0765},
		{-0.0209, 0.0032, 0.0224},
		{-0.0804, -0.0254, -0.0639},
		{-0.0991, 0.0271, -0.0669},
		{-0.0646, -0.0422, -0.0400},
		{-0.0696, -0.0595, -0.0894},
		{-0.0799, -0.0208, -0.0375},
		{0.1166, 0.1627, 0.0962},
		{0.1165, 0.0432, 0.0407},
		{-0.2315, -0.1920, -0.1355},
		{-0.0270, 0.0401, -0.0821},
		{-0.0616, -0.0997, -0.0727},
		{0.0249, -0.0469, -0.1703},
	},
	Bias: [3]float32{0.0259, -0.0192, -0.0761},
}

// wan21Matrix also serves Qwen image latents, which reuse the Wan VAE.
var wan21Matrix = Matrix{
	Weights: [][3]float32{
		{-0.1299, -0.1692, 0.2932},
		{0.0671, 0.0406, 0.0442},
		{0.3568, 0.2548, 0.1747},
		{0.0372, 0.2344, 0.1420},
		{0.0313, 0.0189, -0.0328},
		{0.0296, -0.0956, -0.0665},
		{-0.3477, -0.4059, -0.2925},
		{0.0166, 0.1902, 0.1975},
		{-0.0412, 0.0267, -0.1364},
		{-0.1293, 0.0740, 0.1636},
		{0.0680, 0.3019, 0.1128},
		{0.0032, 0.0581, 0.0639},
		{-0.1251, 0.0927, 0.1699},
		{0.0060, -0.0633, 0.0005},
		{0.3477, 0.2275, 0.2950},
		{0.1984, 0.0913, 0.1861},
	},
	Bias: [3]float32{-0.1835, -0.0868, -0.3360},
}

// sdxlMatrix handles every 4-channel latent (SD1 and SDXL spaces).
var sdxlMatrix = Matrix{
	Weights: [][3]float32{
		{0.3920, 0.4054, 0.4549},
		{-0.2634, -0.0196, 0.0653},
		{0.0568, 0.1687, -0.0755},
		{-0.3112, -0.2359, -0.2076},
	},
	Bias: [3]float32{0.1084, -0.0175, -0.0011},
}

var wan22Matrix = Matrix{
	Weights: [][3]float32{
		{0.0119, 0.0103, 0.0046},
		{-0.1062, -0.0504, 0.0165},
		{0.0140, 0.0409, 0.0491},
		{-0.0813, -0.0677, -0.0607},
		{0.0656, 0.0851, 0.0808},
		{0.0264, 0.0463, 0.0912},
		{0.0295, 0.0326, 0.0590},
		{-0.0244, -0.0270, -0.0163},
		{0.0068, -0.0653, -0.0232},
		{0.0441, 0.0425, 0.0089},
		{-0.0465, -0.0652, -0.0358},
		{0.0159, 0.0202, 0.0135},
		{-0.0326, -0.0261, -0.0325},
		{0.0483, 0.0366, 0.0310},
		{-0.0780, -0.0751, -0.0836},
		{0.0191, 0.0240, 0.0430},
		{-0.0301, -0.0389, -0.0205},
		{0.0691, 0.0587, 0.0555},
		{0.0120, -0.0211, -0.0335},
		{-0.0858, -0.0790, -0.0669},
		{0.0332, 0.0313, 0.0589},
		{-0.0104, 0.0206, 0.0240},
		{0.0529, 0.0441, 0.0326},
		{-0.0587, -0.0601, -0.0500},
		{0.0200, 0.0166, 0.0104},
		{0.0360, 0.0397, 0.0472},
		{-0.0666, -0.0630, -0.0718},
		{0.0266, 0.0219, 0.0221},
		{-0.0133, -0.0176, 0.0151},
		{0.0461, 0.0519, 0.0413},
		{-0.0228, -0.0168, -0.0096},
		{0.0379, 0.0305, 0.0254},
		{-0.0107, -0.0281, -0.0393},
		{0.0624, 0.0605, 0.0718},
		{-0.0436, -0.0373, -0.0321},
		{0.0142, 0.0190, 0.0228},
		{-0.0555, -0.0510, -0.0484},
		{0.0311, 0.0262, 0.0206},
		{0.0246, 0.0306, 0.0378},
		{-0.0378, -0.0443, -0.0508},
		{0.0165, 0.0113, 0.0075},
		{-0.0782, -0.0725, -0.0620},
		{0.0538, 0.0554, 0.0669},
		{-0.0205, -0.0157, -0.0194},
		{0.0350, 0.0291, 0.0234},
		{-0.0426, -0.0478, -0.0382},
		{0.0227, 0.0274, 0.0320},
		{-0.0612, -0.0560, -0.0497},
	},
	Bias: [3]float32{-0.0344, -0.0998, -0.1448},
}
