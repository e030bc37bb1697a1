package constant

import "dbt-dost-be/pkg/rag/faq"

// KeywordFAQTables backs the zero-latency FAQ resolver consulted before the
// generative pipeline. Entry order matters: resolution is first-match.
var KeywordFAQTables = map[string][]faq.Entry{
	"en": {
		{
			Topic:    "what_is_dbt",
			Keywords: []string{"what is dbt", "dbt full form", "direct benefit"},
			Answer:   "DBT stands for Direct Benefit Transfer. It is a government program to transfer subsidies and benefits directly into the bank accounts of beneficiaries.",
		},
		{
			Topic:    "aadhaar_seeding",
			Keywords: []string{"seeding", "aadhaar link", "link my account", "seed my account"},
			Answer:   "Aadhaar Seeding is the process of linking your Aadhaar number to your bank account to receive DBT payments. You can do this by visiting your bank branch with your Aadhaar card.",
		},
		{
			Topic:    "nsp_portal",
			Keywords: []string{"nsp", "scholarship", "national scholarship"},
			Answer:   "The National Scholarship Portal (NSP) is the official website to apply for various government scholarships. You can visit it at scholarships.gov.in.",
		},
	},
	"hi": {
		{
			Topic:    "what_is_dbt",
			Keywords: []string{"dbt kya hai", "dbt ka matlab", "प्रत्यक्ष लाभ"},
			Answer:   "डीबीटी का मतलब प्रत्यक्ष लाभ हस्तांतरण है। यह लाभार्थियों के बैंक खातों में सीधे सब्सिडी और लाभ हस्तांतरित करने का एक सरकारी कार्यक्रम है।",
		},
		{
			Topic:    "aadhaar_seeding",
			Keywords: []string{"seeding", "aadhaar link", "खाता लिंक", "सीड कैसे करें"},
			Answer:   "आधार सीडिंग आपके आधार नंबर को आपके बैंक खाते से जोड़ने की प्रक्रिया है ताकि डीबीटी भुगतान प्राप्त हो सके। आप अपनी आधार कार्ड के साथ अपनी बैंक शाखा में जाकर यह कर सकते हैं।",
		},
		{
			Topic:    "nsp_portal",
			Keywords: []string{"nsp", "scholarship", "छात्रवृत्ति", "नेशनल स्कॉलरशिप"},
			Answer:   "नेशनल स्कॉलरशिप पोर्टल (NSP) विभिन्न सरकारी छात्रवृत्तियों के लिए आवेदन करने की आधिकारिक वेबसाइट है। आप इसे scholarships.gov.in पर देख सकते हैं।",
		},
	},
}

// FAQItem is one curated question/answer pair in the browsable FAQ tree
type FAQItem struct {
	Question string
	Answer   string
}

// FAQCategory is one browsable FAQ topic
type FAQCategory struct {
	Key       string
	Title     string
	Questions []FAQItem
}

// FAQCategories is the static FAQ tree served through the menu flow.
// Slice order defines menu order.
var FAQCategories = []FAQCategory{
	{
		Key:   "dbt",
		Title: "DBT Guidelines",
		Questions: []FAQItem{
			{
				Question: "What is Direct Benefit Transfer?",
				Answer:   "Direct Benefit Transfer (DBT) is a major reform initiative launched by Government of India on 1 January 2013 to transfer benefits directly into the bank/postal accounts of beneficiaries. It aims to eliminate middlemen, reduce leakages, and ensure better delivery of government subsidies and welfare payments using modern Information and Communication Technology (ICT).",
			},
			{
				Question: "How does DBT work?",
				Answer:   "DBT works by digitizing beneficiary databases and making payments directly to bank accounts through electronic transfer. For cash benefits, funds flow from Central Government to State Treasury via PFMS (Public Financial Management System) and then to individual beneficiary accounts. For in-kind benefits, distribution happens through PoS devices with authentication.",
			},
			{
				Question: "What are the transaction charges for DBT?",
				Answer:   "As per Government Order dated 26.02.2016:\n\n• Transaction charges: Rs. 0.50/- per transaction shared between sponsor banks, destination entities and NPCI\n• Cash out incentives: For MGNREGA, Maternity Benefits and Pension Schemes - Rs. 5/- fixed + Rs. 0.50/- per Rs. 100 (maximum Rs. 5/-) to promote last mile delivery",
			},
			{
				Question: "How many schemes are under DBT?",
				Answer:   "As of April 2016, 66 schemes of 15 Ministries/Departments are reported to be on DBT. DBT is being implemented across the country, delivering benefits to more than 30 crore beneficiaries with over 100 crore DBT transactions completed.",
			},
			{
				Question: "Is Aadhaar mandatory for DBT?",
				Answer:   "At present, Aadhaar is not mandatory for availing DBT in any welfare schemes. DBT can be undertaken by digitizing beneficiary database and making payments directly to bank accounts. However, Aadhaar seeding in beneficiary database and bank accounts is highly desirable to achieve DBT objectives effectively and prevent leakages.",
			},
			{
				Question: "What is Aadhaar seeding?",
				Answer:   "Aadhaar seeding is done by updating Aadhaar number in the beneficiary database and linking the Aadhaar number with the bank account of the beneficiary in the Core Banking System (CBS). This helps in de-duplication, curbing leakages, and provides faster channels for welfare payments without middlemen.",
			},
		},
	},
	{
		Key:   "nsp",
		Title: "NSP Scholarship",
		Questions: []FAQItem{
			{
				Question: "What is the National Scholarship Portal?",
				Answer:   "National Scholarship Portal (NSP) is a one-stop IT solution launched on 1st July 2015 under 'Digital India'. It facilitates various services from student application, receipt, verification, processing, and disbursal of scholarships to students directly into their accounts through Direct Benefit Transfer (DBT). NSP is a Mission Mode Project providing a SMART system - Simplified, Mission-oriented, Accountable, Responsive and Transparent.",
			},
			{
				Question: "How do I apply for a scholarship on NSP?",
				Answer:   "To apply on NSP:\n\n1. Fresh Students: Register at https://scholarships.gov.in/ using 'New Registration'\n2. Provide accurate information as per documents\n3. Keep Aadhaar number, bank details, educational documents ready\n4. Submit application and get unique Application ID via SMS\n5. Login and change password on first login\n6. Submit documents to your Institute after online submission\n\nRenewal Students: Use previous year's Application ID and update marks obtained.",
			},
			{
				Question: "What is the workflow for NSP?",
				Answer:   "NSP follows a 7-step workflow:\n\n1. Student Registration and Application Submission\n2. Level 1 Verification at Institute Level\n3. Level 2/3 Verification at District/State/Ministry Level\n4. Beneficiary Records Creation and Account Validation by PFMS\n5. Applications Deduplication and Merit List Generation\n6. Payment File Generation and Financial Approval\n7. Scholarship Disbursement through DBT",
			},
			{
				Question: "Who are the users of NSP?",
				Answer:   "Primary users of NSP include:\n\n• Students/Applicants (Fresh and Renewal)\n• Institute Nodal Officers\n• District/State/Ministry Nodal Officers\n• Scheme owner Ministries/Departments\n• Ministry of Electronics & Information Technology (MeitY)\n• Direct Benefit Transfer (DBT) Mission\n• National Informatics Center (NIC)\n• Help Desk support",
			},
			{
				Question: "What are the steps for scholarship disbursement?",
				Answer:   "Scholarship disbursement steps:\n\n1. Applications verified at Institute and State/District levels\n2. Beneficiary records created and account validation by PFMS\n3. Deduplication process and merit list generation\n4. Payment file generation and financial approval\n5. Final disbursement through DBT directly to student's bank account\n\nNote: Priority is given to Aadhaar seeded bank accounts for disbursement.",
			},
			{
				Question: "What documents are required for NSP application?",
				Answer:   "Required documents for NSP:\n\n• Educational documents (certificates, mark sheets)\n• Aadhaar number (mandatory if available)\n• Bank passbook with photograph (PDF/JPEG, max 200KB)\n• Enrolment ID (if Aadhaar not available)\n• Bonafide student certificate from Institute\n• Category certificates (if applicable)\n• Income certificate\n• Any scheme-specific documents as per eligibility criteria",
			},
		},
	},
	{
		Key:   "aadhaar",
		Title: "Aadhaar Steps",
		Questions: []FAQItem{
			{
				Question: "How do I link my Aadhaar to my bank account?",
				Answer:   "To link Aadhaar to your bank account:\n\n1. Visit your bank branch where you have the account\n2. Request bank officials to link your Aadhaar with your account\n3. Fill up the mandate and consent form of the bank\n4. Bank will verify your details and documents\n5. Bank officials will link Aadhaar number to your account in CBS\n6. Bank will also update NPCI mapper\n7. Once completed, your account becomes DBT enabled",
			},
			{
				Question: "How can I check my bank seeding status?",
				Answer:   "You can check your bank seeding status from:\n\n• Official website: https://myaadhaar.uidai.gov.in/\n• NPCI website: https://base.npci.org.in/catalog/seedingRequestDetails\n\nNote: Information is fetched from National Payment Corporation of India (NPCI) server. UIDAI is not responsible for its correctness and does not store this information.",
			},
			{
				Question: "What is the process for Aadhaar seeding?",
				Answer:   "Aadhaar seeding process:\n\n1. Customer visits bank branch and submits duly filled consent form\n2. Bank officials verify details, documents and customer authenticity\n3. Bank accepts consent form and provides acknowledgement\n4. Branch links Aadhaar number to customer's account and NPCI mapper\n5. Once completed, Aadhaar number reflects in NPCI mapper\n6. Account becomes ready for DBT transactions\n\nCustomer can link only one account with Aadhaar at any point of time.",
			},
			{
				Question: "What do I do if my Aadhaar status is inactive?",
				Answer:   "If your Aadhaar status is inactive:\n\n1. Visit your respective bank branch in person\n2. Submit duly filled customer consent form\n3. Bank will reactivate your Aadhaar seeding status\n4. For pending subsidies, approach Oil Marketing Companies (OMCs)\n5. Contact OMCs through toll free number: 1800 2333 555\n6. OMCs will reinitiate failed transactions to your seeded bank account",
			},
			{
				Question: "Who do I contact for grievance redressal?",
				Answer:   "For Aadhaar seeding grievances:\n\n1. First approach your bank's customer service cell\n2. Follow bank's escalation matrix if issue not resolved\n3. If Aadhaar not reflecting in NPCI mapper after submitting documents, contact bank only\n4. For NPCI related issues: Write to npci.dbtl@npci.org.in with Aadhaar consent acknowledgment copy from bank\n5. NPCI will coordinate with concerned bank teams for resolution",
			},
			{
				Question: "How do I receive benefits in my bank account?",
				Answer:   "To receive DBT benefits in your bank account:\n\n1. Visit the bank branch where you have opened the account\n2. Request bank to link your Aadhaar with your account\n3. Fill up the mandate and consent form of the bank\n4. This account will be seeded with NPCI-mapper by the bank\n5. Account becomes DBT enabled for receiving government benefits\n6. All eligible scheme benefits will be directly transferred to this account\n\nEnsure your account remains active and functional to receive payments.",
			},
		},
	},
}

// FAQCategoryByKey looks up a category in the static tree
func FAQCategoryByKey(key string) (FAQCategory, bool) {
	for _, c := range FAQCategories {
		if c.Key == key {
			return c, true
		}
	}
	return FAQCategory{}, false
}
