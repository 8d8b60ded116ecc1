package rng

// incrementTable holds 1024 pre-selected Weyl increment halves. Each entry
// is a permutation of eight distinct hex digits with a non-zero leading
// digit and an odd trailing digit, which avoids the short cycles that
// regular bit patterns produce in the middle-square step.
var incrementTable = [1024]uint32{
	0x92aceb43, 0x5d3b6247, 0x942fc513, 0xcf1b496d, 0x62d39f01, 0xb046ea29, 0xa8b3697f, 0x567f4b0d,
	0xe605a49b, 0x6b43d5cf, 0x64cb9edf, 0xe493850d, 0xd305c279, 0x37acbd8f, 0xa52873ef, 0x8e561429,
	0x10bd4739, 0x65e04839, 0xc91ab0e7, 0x5b2946e1, 0xdb785cf1, 0x1e3b0f75, 0x76802e15, 0xc67fd81b,
	0xfced1a43, 0xf5e0931d, 0x1328e64b, 0xd8f4b605, 0x1d6a87b5, 0xc5e0ab67, 0x6e450823, 0x324560bd,
	0x3dac2e4b, 0xdebf8267, 0xea1c4d69, 0x46f21ed7, 0xc7f1ad29, 0x2e01b4cd, 0x31a84dc9, 0x36c9e4b5,
	0x3b1a6e79, 0xfe462c95, 0xa5f1cb8d, 0xb872da69, 0xf985e623, 0xb5e6f927, 0xa9c0712f, 0xa58c7e3d,
	0xef482a69, 0xa384129f, 0x7ce2034b, 0x15364cf7, 0x9f8ad6c1, 0xb47c80a1, 0xe125c79f, 0x254fc071,
	0x8af0bc57, 0x103fc2d7, 0x861320db, 0x73520a9b, 0x956fc0ad, 0xd7fc6489, 0x46d0ae51, 0x8a9f7d65,
	0x428635d9, 0xdb2a58e3, 0x4b23ed87, 0xc17d845b, 0x6be52f3d, 0x162304fb, 0xa721f08d, 0x934f0217,
	0xa238b5cd, 0x4230b1e7, 0xc8a94e5b, 0xab7936c1, 0x5e46cdb3, 0x4c8d5b29, 0xab68f321, 0xe45dc1fb,
	0xb140a639, 0xaf4c360b, 0x68a0ef4d, 0x86371fcb, 0xba63f201, 0x6378cd2b, 0x4a5380e7, 0xac9d643f,
	0x16d0254f, 0x8aec1d4f, 0x3f5e14cb, 0x96d3afc7, 0x15b0ed2f, 0xe5293d71, 0x68f4e7d1, 0xad95124f,
	0x6fdba537, 0x794315ab, 0x381a965b, 0x18c506ab, 0xad1f0e93, 0x8ec56d4b, 0xc5e4a8f9, 0x601d43a5,
	0x69c8f3bd, 0x24c9bf85, 0xc24fa1ed, 0x13ed5a67, 0xc3208d47, 0x52edf387, 0x64310bc5, 0x3f061725,
	0x87c62193, 0x49f61ac3, 0xe765adf3, 0xafc68057, 0x6e2a4f79, 0x598473b1, 0x4089d31f, 0x3ba9e17d,
	0x5278390d, 0x6f84309b, 0x28a4c075, 0x6fcb8745, 0xa159432f, 0x7a86d041, 0x8fd40917, 0x691e0df7,
	0xde348709, 0x12b8e759, 0x5bc938fd, 0x6f870b91, 0xb41ae529, 0xb79e4d31, 0xb1d34589, 0xb1fae85d,
	0x63d7ca8f, 0x602e38f5, 0x51963ec7, 0xe3bca295, 0x752a0c6f, 0xbc6e12f9, 0x861a70b5, 0x14a8ce53,
	0xf0431b8d, 0x2e64d8a3, 0xa0ed715f, 0xd5e3b8f9, 0xfd453a19, 0x637f18ed, 0xdcb09875, 0x9ab3d167,
	0x4ce3fd65, 0xa98106e3, 0x5a890eb1, 0x5f8bea13, 0x29a57f3d, 0xe93b1a75, 0x87b950f1, 0x507c1ab3,
	0x16c0d24f, 0xe94cfb53, 0x6def2407, 0x95a7380d, 0x5f038a1b, 0xdb0138a9, 0x8e564ac7, 0x5e31b69f,
	0xa95c6ed7, 0x9d04fb21, 0xa6cd4105, 0x37829abf, 0xf8e90437, 0xc653e0a7, 0x1e478fc5, 0xf247e0c3,
	0xecf8a95b, 0x3a48ed2f, 0xae0d2813, 0x8952c14f, 0x61df2845, 0x54ec3819, 0xdc51760b, 0xcb5ea13f,
	0xcd6a3029, 0xa86c0129, 0x73154b2f, 0x14e3db29, 0xf629eba1, 0xc5ae6f8b, 0xfc607d15, 0x7e40d965,
	0x421e8c7f, 0x6045f3b9, 0xab7106f3, 0x6725ce8d, 0x4170ea65, 0x4d928c53, 0x59b7201f, 0x891b5743,
	0x73b8a12f, 0xfcba02d5, 0x507c8e6f, 0x6afe582d, 0xe64732f1, 0x96f3cd2b, 0xb3c61ef9, 0xab90d613,
	0x27ba0e81, 0xc28617ab, 0x24a01fe7, 0x738c5adf, 0x347dbf21, 0x1b654a23, 0x795286e1, 0x3597ab81,
	0x7ac1d20f, 0x6ec198df, 0x1bea59fd, 0x2014f5d9, 0x8fc4ae91, 0x729efc5d, 0x92fba6c3, 0x70c59a2f,
	0xd39c6725, 0xe4f6ba21, 0xca0be47f, 0x6ec8fd43, 0x74b0e815, 0xeb68142d, 0xae8d346f, 0xf80563c7,
	0x2def7691, 0x7253410b, 0x2743d0cb, 0x64d58eb7, 0xe516f409, 0x948b7061, 0xb8a9f235, 0x327069a5,
	0xca15d489, 0x58ad6f3b, 0xf61bad09, 0x9ef56023, 0x4768295b, 0x386bf071, 0xda028f67, 0x2cd8f91b,
	0x7e164a05, 0xe34f180d, 0x59f0a713, 0x5c463bad, 0x7d51a34b, 0x7e1c8df5, 0xb12fce09, 0xd57430b1,
	0x9ae51dbf, 0xe65739bd, 0x15ab93cf, 0xf36d4bc9, 0x5f0c68b3, 0x5f37d84b, 0x15e30d4b, 0xca3b764f,
	0x1c06a42f, 0x410de8b3, 0x392c657b, 0xe6750bc9, 0x3e76f249, 0xf230b8c7, 0x84b7120f, 0x3c5216d9,
	0xfca3d897, 0x89f2a01d, 0xbd8f1295, 0x2adfc851, 0x6427bd85, 0xde7f06c1, 0x19258cad, 0x39db2415,
	0x3587c429, 0xae8dc72b, 0x9ba5e371, 0x391bfa57, 0x2e958acf, 0x1a0c5e8d, 0x80d3e697, 0x789c6fe5,
	0xa3c5b729, 0x8c25a413, 0x8635e4fd, 0xe65c4027, 0xb1029f4d, 0xa81c0bd9, 0x27965381, 0xebc8a267,
	0xcb925fe1, 0xa084d9f7, 0xbd9840f7, 0x4a01f7cd, 0xba689d27, 0xf1ed9765, 0xf81ec375, 0x4cef719d,
	0x1250a943, 0xf18b670d, 0x28a04c97, 0x2957134b, 0xe497a623, 0xb0429ca1, 0xe91a4763, 0xb7f13405,
	0xb01e6fa5, 0x46591a03, 0x8bc5a61d, 0x870315a9, 0x48967135, 0xe7b90f8d, 0x5aec7069, 0x4bd1ac67,
	0x9126be3d, 0x82c5de0f, 0x238db59f, 0x4803cd17, 0xdbea327f, 0xde98cf61, 0xe714b90d, 0xb123cf0d,
	0x87c6e0d9, 0xd47a5829, 0x3d075619, 0xa8123fcb, 0x7304518b, 0x65e823bf, 0x89d2a03b, 0x58042be9,
	0x7dbc42a3, 0xb621ea35, 0x754ea621, 0x4f0cdbe1, 0xea1f6825, 0x6e0af517, 0x4caed209, 0x5cd1ae0b,
	0x75ec6ad1, 0x98e4f521, 0xe84a1095, 0x785463b9, 0x652d9783, 0xfc581e27, 0xe894a2c1, 0xe794fa21,
	0xa81bec53, 0x35268f7d, 0x67d91f85, 0xd5cf1a2b, 0xe9f38da5, 0xf5230417, 0xd7a6cbf9, 0x42ad7e03,
	0x238194a5, 0x4e812cdf, 0x9b80e4c7, 0x16357429, 0x526e84fd, 0xbe847a6f, 0x1a3fd0c9, 0x78d362a9,
	0xc5e1a68f, 0x7c8b4fe3, 0xd8e039f5, 0x8f325d1b, 0x71d48eaf, 0x2d0ab549, 0xc1e803df, 0xd25f0461,
	0x1ef4792b, 0xc4586e31, 0x26c845bf, 0x96cd8745, 0xac2167b5, 0xf316e4a5, 0x92576cd1, 0x47fa516d,
	0x6dc8b7e5, 0x805ac473, 0xc5eda439, 0xc30ef6a7, 0x763af9c5, 0xe75d9c1f, 0x4d239057, 0x1f7ba435,
	0xe4a65897, 0xa0613bf7, 0x980e7d53, 0x5ef1342d, 0xa375982b, 0x8ef60a3b, 0x4ac23987, 0xe03971d5,
	0xc9f532e1, 0x42681e3b, 0x3645098d, 0x18b20ae9, 0xea50d38f, 0xe107b5fd, 0xa5eb0417, 0xd85a46ef,
	0xb6d84c2f, 0xdfa563e1, 0x2f40cd69, 0x7ed5a3f9, 0x679d1ac5, 0x52ae406b, 0x7c214e6f, 0x23189fbd,
	0x4c9e6281, 0x7b409ad3, 0x68b15a9f, 0xb9ca7863, 0xc704a9d3, 0xcbe698a5, 0xd761ac85, 0x7890d5ef,
	0xe807a395, 0x30b8f2d7, 0xd862f5cb, 0x29acfe81, 0x7e950a1d, 0x5d0184e9, 0xfd21b783, 0x8b4d3615,
	0x26fac05d, 0xbd2a1f73, 0xae50b741, 0x9acf2783, 0x74a1ef65, 0xdba23415, 0x48261feb, 0x4a5c201d,
	0x7b12e85d, 0xe4c2abd5, 0x54c10d6f, 0x9c4b3f7d, 0xb2a14503, 0x60a349cf, 0x17d04583, 0xa67d812f,
	0x453ef82d, 0xdca75f49, 0x958e142b, 0xe5f3126b, 0x6918c2f5, 0xe27b80d9, 0x864bce03, 0xe46a7cfd,
	0x7cdb8a13, 0x2d7569c3, 0x68fcd341, 0x5e08b473, 0x5248c0db, 0x7e25968d, 0x1a742de3, 0x58ceb3f7,
	0x2b604acf, 0x9527b6e1, 0x2e14ab0d, 0xae07c21f, 0x5aefb137, 0x897d4af3, 0xb6ca0d15, 0xf781d459,
	0x8cf4b1e3, 0x450c36a9, 0xeab728f1, 0x68a2e1fb, 0xc3f64b09, 0xa38b6915, 0xd56f9283, 0xcd48b763,
	0xef6b8247, 0xdea02587, 0x6f8cb943, 0xde98c0b3, 0x6953a48f, 0x65fcb291, 0x3c7e9621, 0x8cb1a679,
	0xb7de9a53, 0xab951edf, 0x1a2850bf, 0xc713ebaf, 0x257f4a01, 0xc92a308f, 0xaef1d3b9, 0xcf7a9615,
	0xf53cae81, 0x5c7a394f, 0x93d25f87, 0xb24ca519, 0x58ce2ba1, 0x1dfe5c89, 0x15e2b0d3, 0x4da09b71,
	0x1e4f5ba3, 0x2e7b8035, 0x10897d3b, 0x2f1058d7, 0xe4dc23a1, 0x85074163, 0x4e8c13df, 0x6b48ad21,
	0xbd7430a5, 0x17e0b693, 0x9ba3e4c5, 0xea83cf49, 0xdacbe851, 0xe9c73a0d, 0x795cd083, 0x80c6d25f,
	0x786b521f, 0x4e037abd, 0xa478610b, 0xd954678f, 0x6f2a9d31, 0xce82d1b9, 0x4bcd5709, 0x9a8b1d23,
	0xac8d25fb, 0x6c5d2b71, 0xb8afd109, 0x7a3fd829, 0x8c06e95d, 0xd7032bc5, 0x39ca4b5f, 0x931feb7d,
	0xe5a8673b, 0xa1b7e58d, 0xb547f62d, 0x38c67941, 0x1ca5ef63, 0xa5ce0f69, 0x928d7e15, 0x2f38c615,
	0xcb706d1f, 0xda2860cf, 0x784a52e3, 0x70e4cadf, 0x9acf3b57, 0x24561dc9, 0xa9b7d60f, 0x5d0f4b87,
	0x5f80b31d, 0x16b8dcef, 0xcfd0982b, 0x6dc25849, 0x7b8692a5, 0xca8367bf, 0x1490eda3, 0x4b3195f7,
	0x210be873, 0x93e4f8c1, 0xab085e4d, 0xb019e827, 0x608273db, 0x8f6513cb, 0x8c16f09b, 0x9a52dec1,
	0xcd8275b1, 0xf3820ad5, 0x72ed3c8f, 0x784e3ab9, 0xfbe95c3d, 0x8c5e1d43, 0xbc5143a9, 0x7ad25ef3,
	0xe259acb1, 0x9e8b6d41, 0x79ec2b83, 0x367084bf, 0x39e4670d, 0xa068be35, 0x14c29fb5, 0x3b76d1f5,
	0x56af7d43, 0x37e860c1, 0xec20439f, 0x41587fc9, 0x768dbf25, 0xf94ec127, 0xef45b219, 0x52dfa8e7,
	0xcf0bd385, 0x2f9486ed, 0x509e6a7d, 0xf94e8bc3, 0x708adb6f, 0x8ba7692d, 0x290f3c75, 0x2e748c6d,
	0xfb4536e7, 0x6ba4fe97, 0xd0b138cf, 0x1c97f4ed, 0xf534d107, 0x95b2d861, 0xba64720f, 0x45c2adf1,
	0xfa24d917, 0x3541987d, 0x3e7ab281, 0x750adb23, 0x3f5092db, 0x81a03b75, 0x79acf51b, 0xdc9302a5,
	0xc7841f93, 0xb97083ef, 0x7a01bced, 0x1a3702e5, 0x4d23f6c1, 0xf62a91bd, 0xa5739b8f, 0xd02b3ef7,
	0x598632d7, 0x3a7b95df, 0x9403a2df, 0x5429d78b, 0x60723b9d, 0xa673dc25, 0xaf420785, 0x306c15af,
	0x648b7fd9, 0xd96cb813, 0x2f8de309, 0xce91df6b, 0xb86a2139, 0x623b5ae1, 0x4ac02d1b, 0xf783a20b,
	0x978423cb, 0x615c9b03, 0x3174eb85, 0xa5128ec7, 0x73e25b09, 0xc42ed36f, 0x38b6f0e5, 0x7a8d60f3,
	0x3ec6a105, 0x1f4adc87, 0x6caed51f, 0x6a01f587, 0x124c6853, 0xa28b0ef5, 0x891572cb, 0x5e3c6b9f,
	0x80d5fce7, 0x58e06fad, 0x736ef201, 0x16b9c437, 0x24c130e7, 0xc54f9a8b, 0x182094f3, 0xfe574693,
	0x26a839db, 0xab56234d, 0xd31e6809, 0xbea4359f, 0xbec23759, 0x6a4c9573, 0x95018a4f, 0x8145cde3,
	0x12830c9d, 0x2a591de7, 0x697fc14d, 0x89f1a0ed, 0x83ea621f, 0x246cb89d, 0xb70148ef, 0x531d0c97,
	0x289746d5, 0xc305162d, 0x45c280f9, 0x5248f109, 0x65fdb2c3, 0xc13d462f, 0x60398d21, 0x94286f0b,
	0xf50e1287, 0x9830c76f, 0xeb9081ad, 0xa8259bfd, 0x83bac9e5, 0x1852973b, 0x628fcead, 0x18075fdb,
	0xbfc65e37, 0x301fa4d7, 0x215cdf63, 0xb835a9cd, 0xe87239f5, 0x5824c76f, 0x409762cf, 0xa5274d63,
	0x70f526cb, 0x34e20985, 0x30cf5a61, 0x8495dcfb, 0x84732c51, 0x19a78d2b, 0x391e0c65, 0xe4f5c0b7,
	0xc5a90641, 0x491fc5d3, 0x2fab3781, 0xbae60495, 0xb28d7365, 0x61b4a9c3, 0x5c240bf1, 0x861047e9,
	0x84f5a639, 0x680cf743, 0x6c128d39, 0x94c60f75, 0xd1f2b0e9, 0x5a93bde7, 0x7f2a03b1, 0xd0e7f231,
	0xfdea0b29, 0xfe6b5413, 0x1a264b5d, 0x268c7f0d, 0xa6c2130d, 0xab35dc89, 0x806bd145, 0x9a4b1263,
	0x2d9c1e7f, 0x6ef2c935, 0x534a8617, 0xe4d6350f, 0xbae08f67, 0x73058fcb, 0x92a54ecf, 0x3e264179,
	0x4d0a8e57, 0xbf6301d9, 0x4c10f8b5, 0xa761e92f, 0x13b8a057, 0x4865c7d1, 0x9f1ae085, 0xb1a9570d,
	0xa0875f6b, 0x3fc612a7, 0xfe4b72a5, 0xeda128c7, 0xac508eb7, 0x152c68f9, 0x57acd029, 0x5ba1cd7f,
	0x43528c1f, 0xe2794b3f, 0x263f8075, 0xfbc170ad, 0xc09126e3, 0x95c3a40b, 0x28a76d03, 0x6c24ae8f,
	0x2d357ea9, 0xfc21d0a5, 0x1b37d9c5, 0x6410872d, 0xcb64f8a9, 0xd4ce0729, 0xe072153d, 0xc3b47ae5,
	0xf57c64ab, 0x67c4af0b, 0x70c59821, 0xbc93268f, 0x8fa7e291, 0xc5e29b01, 0x317be8d5, 0x18e0cdb3,
	0xa8351f6d, 0xe067a3fd, 0xdc6a849f, 0xf6b948a1, 0x80acef37, 0x8e40a76d, 0x6b203fad, 0x53489deb,
	0xe32cb5fd, 0x186a0e5b, 0x265d8917, 0xb26a380d, 0xc60be97d, 0x7d54e38f, 0xb3ace015, 0xd45f7c23,
	0x9a3c45fb, 0x9240a513, 0xcb70583f, 0xd28097e5, 0x6cbf9a43, 0xcb064ad5, 0x7521c6fb, 0x6504d971,
	0xf95a76b3, 0xdae720c1, 0x16bd8ea7, 0x9a8f6235, 0x603d1eb9, 0xde278c41, 0x5619e7df, 0x6472e51f,
	0x6025f1eb, 0xcf961475, 0xb498c721, 0x410567ad, 0xf52c7e19, 0x6aed8b75, 0xe8fb61d3, 0xe78a312d,
	0x3edc85a1, 0xc42e3dbf, 0xc0d18497, 0x2063da49, 0xe1a8f579, 0x4715da89, 0xd42b3ca5, 0x52f8ad79,
	0x94b7d0c5, 0x5dae82b1, 0xe5fb20c7, 0x730cda61, 0x87520f6b, 0x74f3b9c1, 0x8b2e56a3, 0x941528ed,
	0x186dc73b, 0x7a84fd93, 0xa64108d7, 0xb265fa7d, 0x9d7bac31, 0x8f2d91a7, 0x32f1c06d, 0xe9c04a21,
	0xca519d23, 0x84d16fb7, 0xf936b751, 0x13c02a4d, 0x2604a7d5, 0x84be0f69, 0x2e6c71af, 0x6fe5d8c7,
	0xa6d71ef9, 0xd6f537a1, 0xcf68b705, 0x7801a3bd, 0x8d6bca51, 0x274da1c5, 0x2fc8a963, 0xb6540cef,
	0xebc74d61, 0x453729ad, 0x91462bf7, 0x2e169a8b, 0xda5e4689, 0x69c8f1e7, 0x8460b91d, 0xd26401c7,
	0x731250bd, 0xf1d4e609, 0x8aec376f, 0xf1084c53, 0xa241938d, 0x3294cb8d, 0x74c9ea31, 0x56a70c29,
	0x108c26e7, 0xb30a49d7, 0x85ba1e67, 0x24a316eb, 0x6f2c5417, 0x9be4027d, 0x89cdf743, 0x982e075f,
	0x26fc18d7, 0x7542f61b, 0xc24783d1, 0xfb47ec6d, 0x174d9ab5, 0x27e1a46f, 0x9eb5d2a3, 0x25d7ae91,
	0xce7d9ab3, 0x6792fac3, 0xd5e273a9, 0x5a9b8fc1, 0x8ba0f1d5, 0xbe8d2a07, 0xeb93f251, 0xc67a503b,
	0x654be7d3, 0x6a3b14f5, 0x8c6193af, 0xd96f3b21, 0xc2ef56d1, 0x46a1750d, 0x3c01e27f, 0xad82f609,
	0xf2c18397, 0x52409ec7, 0xd90ca435, 0x9ae85d43, 0xa694eb2d, 0xfd0eb369, 0xc40bad97, 0xc04e53f7,
	0x381c0697, 0x4ace0d1b, 0x61439805, 0xd8bc4ea5, 0x3f274ea9, 0x480659c3, 0x5e762193, 0xfeb243ad,
	0x7d69c305, 0xe7f8c03b, 0x2d6a815b, 0x31a69875, 0xd5f182e3, 0x14d2a987, 0x2ce87659, 0x48f21e7b,
	0x3db084a1, 0x578e6f03, 0x31eaf925, 0x20768fdb, 0xa614f9b3, 0x3fe561ab, 0x9012cbd7, 0x7183906f,
	0xb6c841e7, 0xbac9f187, 0x68cd219f, 0x49530d17, 0xfa0e1325, 0x68d9c435, 0x40e9a21b, 0x6057c8fb,
	0xb7260f59, 0xcfe43615, 0x76da3985, 0x42c37105, 0xa160cfe7, 0xa36e1507, 0x146329f5, 0xc503179d,
	0x637d80cb, 0x38b695c7, 0xc8b5962f, 0x729d18f3, 0x4c16af25, 0x9d638105, 0x1958ae67, 0x96d07c15,
	0x4b192a65, 0x1a08f967, 0x23cb9fa1, 0xeb940acf, 0xf82de541, 0x71e5fc2b, 0x269573fb, 0xe25a098d,
	0x90b18e6d, 0xc7ea2b63, 0xf0e947d1, 0xa74285bd, 0xd485ebc3, 0x8dec4a5f, 0xa02745e9, 0xe5a0c96f,
	0xda1f4697, 0xbf79ce01, 0xf9d4860b, 0x40dce175, 0x520f6179, 0xbc9361e7, 0x6753d049, 0x59410e6d,
	0xa84f2be7, 0xc39604bd, 0xe7f4026d, 0xba647fc9, 0x6fe3ba07, 0xa6081c2f, 0xcadb7461, 0xf18269c5,
	0x781de3cb, 0x51c3ba2f, 0xda43906b, 0x8429a5b7, 0xe729ac61, 0x217fa4c5, 0x50f328ab, 0x3bc9f01d,
	0xd18a32cf, 0xf14a3d6b, 0xb8f25e47, 0xdb452063, 0x1b6fc45d, 0xf947e13d, 0xdefc306b, 0x2c37f869,
	0xd2c67953, 0x2b80d34f, 0xf716db89, 0x1fea4b75, 0x6e408f7d, 0x1ac285d3, 0xa28def17, 0xedf31ab9,
}
