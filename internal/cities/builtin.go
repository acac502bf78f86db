package cities

// builtin is the default registry of Indian cities.
var builtin = []City{
	{Name: "Mumbai", State: "Maharashtra", Lat: 19.0760, Lon: 72.8777},
	{Name: "Delhi", State: "Delhi", Lat: 28.7041, Lon: 77.1025},
	{Name: "Bangalore", State: "Karnataka", Lat: 12.9716, Lon: 77.5946},
	{Name: "Hyderabad", State: "Telangana", Lat: 17.3850, Lon: 78.4867},
	{Name: "Chennai", State: "Tamil Nadu", Lat: 13.0827, Lon: 80.2707},
	{Name: "Kolkata", State: "West Bengal", Lat: 22.5726, Lon: 88.3639},
	{Name: "Pune", State: "Maharashtra", Lat: 18.5204, Lon: 73.8567},
	{Name: "Ahmedabad", State: "Gujarat", Lat: 23.0225, Lon: 72.5714},
	{Name: "Surat", State: "Gujarat", Lat: 21.1702, Lon: 72.8311},
	{Name: "Jaipur", State: "Rajasthan", Lat: 26.9124, Lon: 75.7873},
	{Name: "Lucknow", State: "Uttar Pradesh", Lat: 26.8467, Lon: 80.9462},
	{Name: "Kanpur", State: "Uttar Pradesh", Lat: 26.4499, Lon: 80.3319},
	{Name: "Nagpur", State: "Maharashtra", Lat: 21.1458, Lon: 79.0882},
	{Name: "Indore", State: "Madhya Pradesh", Lat: 22.7196, Lon: 75.8577},
	{Name: "Thane", State: "Maharashtra", Lat: 19.2183, Lon: 72.9781},
	{Name: "Bhopal", State: "Madhya Pradesh", Lat: 23.2599, Lon: 77.4126},
	{Name: "Visakhapatnam", State: "Andhra Pradesh", Lat: 17.6869, Lon: 83.2185},
	{Name: "Patna", State: "Bihar", Lat: 25.5941, Lon: 85.1376},
	{Name: "Vadodara", State: "Gujarat", Lat: 22.3072, Lon: 73.1812},
	{Name: "Ghaziabad", State: "Uttar Pradesh", Lat: 28.6692, Lon: 77.4538},
	{Name: "Ludhiana", State: "Punjab", Lat: 30.9010, Lon: 75.8573},
	{Name: "Agra", State: "Uttar Pradesh", Lat: 27.1767, Lon: 78.0081},
	{Name: "Nashik", State: "Maharashtra", Lat: 19.9975, Lon: 73.7898},
	{Name: "Faridabad", State: "Haryana", Lat: 28.4089, Lon: 77.3178},
	{Name: "Meerut", State: "Uttar Pradesh", Lat: 28.9845, Lon: 77.7064},
	{Name: "Rajkot", State: "Gujarat", Lat: 22.3039, Lon: 70.8022},
	{Name: "Varanasi", State: "Uttar Pradesh", Lat: 25.3176, Lon: 82.9739},
	{Name: "Amritsar", State: "Punjab", Lat: 31.6340, Lon: 74.8723},
	{Name: "Allahabad", State: "Uttar Pradesh", Lat: 25.4358, Lon: 81.8463},
	{Name: "Ranchi", State: "Jharkhand", Lat: 23.3441, Lon: 85.3096},
	{Name: "Howrah", State: "West Bengal", Lat: 22.5958, Lon: 88.2636},
	{Name: "Coimbatore", State: "Tamil Nadu", Lat: 11.0168, Lon: 76.9558},
	{Name: "Jabalpur", State: "Madhya Pradesh", Lat: 23.1815, Lon: 79.9864},
	{Name: "Gwalior", State: "Madhya Pradesh", Lat: 26.2183, Lon: 78.1828},
	{Name: "Vijayawada", State: "Andhra Pradesh", Lat: 16.5062, Lon: 80.6480},
	{Name: "Jodhpur", State: "Rajasthan", Lat: 26.2389, Lon: 73.0243},
	{Name: "Madurai", State: "Tamil Nadu", Lat: 9.9252, Lon: 78.1198},
	{Name: "Raipur", State: "Chhattisgarh", Lat: 21.2514, Lon: 81.6296},
	{Name: "Kota", State: "Rajasthan", Lat: 25.2138, Lon: 75.8648},
	{Name: "Chandigarh", State: "Chandigarh", Lat: 30.7333, Lon: 76.7794},
	{Name: "Guwahati", State: "Assam", Lat: 26.1445, Lon: 91.7362},
	{Name: "Thiruvananthapuram", State: "Kerala", Lat: 8.5241, Lon: 76.9366},
	{Name: "Bhubaneswar", State: "Odisha", Lat: 20.2961, Lon: 85.8245},
	{Name: "Puducherry", State: "Puducherry", Lat: 11.9416, Lon: 79.8083},
	{Name: "Panaji", State: "Goa", Lat: 15.4909, Lon: 73.8278},
	{Name: "Dispur", State: "Assam", Lat: 26.1433, Lon: 91.7898},
	{Name: "Imphal", State: "Manipur", Lat: 24.8170, Lon: 93.9368},
	{Name: "Shillong", State: "Meghalaya", Lat: 25.5788, Lon: 91.8933},
	{Name: "Aizawl", State: "Mizoram", Lat: 23.7307, Lon: 92.7173},
	{Name: "Kohima", State: "Nagaland", Lat: 25.6751, Lon: 94.1086},
	{Name: "Itanagar", State: "Arunachal Pradesh", Lat: 27.0844, Lon: 93.6053},
	{Name: "Port Blair", State: "Andaman and Nicobar", Lat: 11.6234, Lon: 92.7265},
	{Name: "Silvassa", State: "Dadra and Nagar Haveli", Lat: 20.2737, Lon: 73.0135},
	{Name: "Shimla", State: "Himachal Pradesh", Lat: 31.1048, Lon: 77.1734},
	{Name: "Manali", State: "Himachal Pradesh", Lat: 32.2396, Lon: 77.1887},
	{Name: "Dharamshala", State: "Himachal Pradesh", Lat: 32.2190, Lon: 76.3234},
	{Name: "Nainital", State: "Uttarakhand", Lat: 29.3919, Lon: 79.4542},
	{Name: "Mussoorie", State: "Uttarakhand", Lat: 30.4598, Lon: 78.0644},
	{Name: "Dehradun", State: "Uttarakhand", Lat: 30.3165, Lon: 78.0322},
	{Name: "Rishikesh", State: "Uttarakhand", Lat: 30.0869, Lon: 78.2676},
	{Name: "Haridwar", State: "Uttarakhand", Lat: 29.9457, Lon: 78.1642},
	{Name: "Darjeeling", State: "West Bengal", Lat: 27.0410, Lon: 88.2663},
	{Name: "Gangtok", State: "Sikkim", Lat: 27.3389, Lon: 88.6065},
	{Name: "Srinagar", State: "Jammu and Kashmir", Lat: 34.0837, Lon: 74.7973},
	{Name: "Leh", State: "Ladakh", Lat: 34.1526, Lon: 77.5771},
	{Name: "Ooty", State: "Tamil Nadu", Lat: 11.4102, Lon: 76.6950},
	{Name: "Kodaikanal", State: "Tamil Nadu", Lat: 10.2381, Lon: 77.4892},
	{Name: "Munnar", State: "Kerala", Lat: 10.0889, Lon: 77.0595},
	{Name: "Wayanad", State: "Kerala", Lat: 11.6054, Lon: 76.0837},
	{Name: "Mount Abu", State: "Rajasthan", Lat: 24.5926, Lon: 72.7156},
	{Name: "Mahabaleshwar", State: "Maharashtra", Lat: 17.9246, Lon: 73.6577},
	{Name: "Lonavala", State: "Maharashtra", Lat: 18.7537, Lon: 73.4086},
	{Name: "Coorg", State: "Karnataka", Lat: 12.3375, Lon: 75.8069},
	{Name: "Kochi", State: "Kerala", Lat: 9.9312, Lon: 76.2673},
	{Name: "Mysore", State: "Karnataka", Lat: 12.2958, Lon: 76.6394},
	{Name: "Mangalore", State: "Karnataka", Lat: 12.9141, Lon: 74.8560},
	{Name: "Hubli", State: "Karnataka", Lat: 15.3647, Lon: 75.1240},
	{Name: "Belgaum", State: "Karnataka", Lat: 15.8497, Lon: 74.4977},
	{Name: "Tirupati", State: "Andhra Pradesh", Lat: 13.6288, Lon: 79.4192},
	{Name: "Guntur", State: "Andhra Pradesh", Lat: 16.3067, Lon: 80.4365},
	{Name: "Nellore", State: "Andhra Pradesh", Lat: 14.4426, Lon: 79.9865},
	{Name: "Tirunelveli", State: "Tamil Nadu", Lat: 8.7139, Lon: 77.7567},
	{Name: "Salem", State: "Tamil Nadu", Lat: 11.6643, Lon: 78.1460},
	{Name: "Tiruchirappalli", State: "Tamil Nadu", Lat: 10.7905, Lon: 78.7047},
	{Name: "Vellore", State: "Tamil Nadu", Lat: 12.9165, Lon: 79.1325},
	{Name: "Erode", State: "Tamil Nadu", Lat: 11.3410, Lon: 77.7172},
	{Name: "Thrissur", State: "Kerala", Lat: 10.5276, Lon: 76.2144},
	{Name: "Kollam", State: "Kerala", Lat: 8.8932, Lon: 76.6141},
	{Name: "Kozhikode", State: "Kerala", Lat: 11.2588, Lon: 75.7804},
	{Name: "Palakkad", State: "Kerala", Lat: 10.7733, Lon: 76.6547},
	{Name: "Alappuzha", State: "Kerala", Lat: 9.4981, Lon: 76.3388},
	{Name: "Noida", State: "Uttar Pradesh", Lat: 28.5355, Lon: 77.3910},
	{Name: "Gurugram", State: "Haryana", Lat: 28.4595, Lon: 77.0266},
	{Name: "Rohtak", State: "Haryana", Lat: 28.8955, Lon: 76.6066},
	{Name: "Panipat", State: "Haryana", Lat: 29.3909, Lon: 76.9635},
	{Name: "Karnal", State: "Haryana", Lat: 29.6857, Lon: 76.9905},
	{Name: "Ambala", State: "Haryana", Lat: 30.3782, Lon: 76.7767},
	{Name: "Patiala", State: "Punjab", Lat: 30.3398, Lon: 76.3869},
	{Name: "Jalandhar", State: "Punjab", Lat: 31.3260, Lon: 75.5762},
	{Name: "Bathinda", State: "Punjab", Lat: 30.2110, Lon: 74.9455},
	{Name: "Mohali", State: "Punjab", Lat: 30.7046, Lon: 76.7179},
	{Name: "Jammu", State: "Jammu and Kashmir", Lat: 32.7266, Lon: 74.8570},
	{Name: "Udaipur", State: "Rajasthan", Lat: 24.5854, Lon: 73.7125},
	{Name: "Ajmer", State: "Rajasthan", Lat: 26.4499, Lon: 74.6399},
	{Name: "Bikaner", State: "Rajasthan", Lat: 28.0229, Lon: 73.3119},
	{Name: "Alwar", State: "Rajasthan", Lat: 27.5530, Lon: 76.6346},
	{Name: "Bharatpur", State: "Rajasthan", Lat: 27.2152, Lon: 77.4899},
	{Name: "Cuttack", State: "Odisha", Lat: 20.4625, Lon: 85.8830},
	{Name: "Puri", State: "Odisha", Lat: 19.8135, Lon: 85.8312},
	{Name: "Rourkela", State: "Odisha", Lat: 22.2604, Lon: 84.8536},
	{Name: "Jamshedpur", State: "Jharkhand", Lat: 22.8046, Lon: 86.2029},
	{Name: "Dhanbad", State: "Jharkhand", Lat: 23.7957, Lon: 86.4304},
	{Name: "Bokaro", State: "Jharkhand", Lat: 23.6693, Lon: 86.1511},
	{Name: "Durgapur", State: "West Bengal", Lat: 23.5204, Lon: 87.3119},
	{Name: "Asansol", State: "West Bengal", Lat: 23.6739, Lon: 86.9524},
	{Name: "Siliguri", State: "West Bengal", Lat: 26.7271, Lon: 88.3953},
	{Name: "Gaya", State: "Bihar", Lat: 24.7955, Lon: 85.0002},
	{Name: "Bhagalpur", State: "Bihar", Lat: 25.2425, Lon: 86.9842},
	{Name: "Muzaffarpur", State: "Bihar", Lat: 26.1225, Lon: 85.3906},
	{Name: "Bilaspur", State: "Chhattisgarh", Lat: 22.0797, Lon: 82.1409},
	{Name: "Korba", State: "Chhattisgarh", Lat: 22.3595, Lon: 82.7501},
	{Name: "Bhilai", State: "Chhattisgarh", Lat: 21.2095, Lon: 81.3785},
	{Name: "Ujjain", State: "Madhya Pradesh", Lat: 23.1765, Lon: 75.7885},
	{Name: "Sagar", State: "Madhya Pradesh", Lat: 23.8388, Lon: 78.7378},
	{Name: "Dewas", State: "Madhya Pradesh", Lat: 22.9676, Lon: 76.0534},
	{Name: "Cherrapunji", State: "Meghalaya", Lat: 25.2959, Lon: 91.7324},
	{Name: "Mawsynram", State: "Meghalaya", Lat: 25.2975, Lon: 91.5805},
	{Name: "Mahabalipuram", State: "Tamil Nadu", Lat: 12.6269, Lon: 80.1926},
	{Name: "Pondicherry", State: "Puducherry", Lat: 11.9416, Lon: 79.8083},
	{Name: "Kannur", State: "Kerala", Lat: 11.8745, Lon: 75.3704},
	{Name: "Kottayam", State: "Kerala", Lat: 9.5916, Lon: 76.5222},
	{Name: "Idukki", State: "Kerala", Lat: 9.9189, Lon: 77.1025},
	{Name: "Udupi", State: "Karnataka", Lat: 13.3409, Lon: 74.7421},
	{Name: "Karwar", State: "Karnataka", Lat: 14.8137, Lon: 74.1290},
	{Name: "Ratnagiri", State: "Maharashtra", Lat: 16.9944, Lon: 73.3000},
	{Name: "Alibag", State: "Maharashtra", Lat: 18.6414, Lon: 72.8722},
	{Name: "Amboli", State: "Maharashtra", Lat: 15.9589, Lon: 74.0047},
	{Name: "Tezpur", State: "Assam", Lat: 26.6338, Lon: 92.8000},
	{Name: "Dibrugarh", State: "Assam", Lat: 27.4728, Lon: 94.9120},
	{Name: "Silchar", State: "Assam", Lat: 24.8333, Lon: 92.7789},
	{Name: "Agartala", State: "Tripura", Lat: 23.8315, Lon: 91.2868},
	{Name: "Gulmarg", State: "Jammu and Kashmir", Lat: 34.0484, Lon: 74.3805},
	{Name: "Pahalgam", State: "Jammu and Kashmir", Lat: 34.0161, Lon: 75.3150},
	{Name: "Sonamarg", State: "Jammu and Kashmir", Lat: 34.3000, Lon: 75.2833},
	{Name: "Dalhousie", State: "Himachal Pradesh", Lat: 32.5448, Lon: 75.9470},
	{Name: "Kullu", State: "Himachal Pradesh", Lat: 31.9578, Lon: 77.1093},
	{Name: "Spiti", State: "Himachal Pradesh", Lat: 32.2466, Lon: 78.0336},
	{Name: "Keylong", State: "Himachal Pradesh", Lat: 32.5721, Lon: 77.0353},
	{Name: "Chamba", State: "Himachal Pradesh", Lat: 32.5562, Lon: 76.1265},
	{Name: "Auli", State: "Uttarakhand", Lat: 30.5323, Lon: 79.5833},
	{Name: "Kedarnath", State: "Uttarakhand", Lat: 30.7346, Lon: 79.0669},
	{Name: "Badrinath", State: "Uttarakhand", Lat: 30.7433, Lon: 79.4938},
	{Name: "Kargil", State: "Ladakh", Lat: 34.5539, Lon: 76.1313},
	{Name: "Tawang", State: "Arunachal Pradesh", Lat: 27.5860, Lon: 91.8597},
	{Name: "Sandakphu", State: "West Bengal", Lat: 27.1095, Lon: 88.0146},
	{Name: "Yumthang Valley", State: "Sikkim", Lat: 27.8100, Lon: 88.7114},
}
